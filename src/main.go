package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"tunelens/src/features/config"
	"tunelens/src/features/hosting"
	"tunelens/src/features/interpreting"
	"tunelens/src/features/logging"
	"tunelens/src/features/metrics"
	"tunelens/src/features/searching"
	"tunelens/src/infra/llm"
	"tunelens/src/infra/spotify"
	"tunelens/src/infra/watcher"
)

const configPath = "config.yaml"

// managedCompleter builds a chat client from the live config on every call,
// so API key changes picked up by the config watcher apply without a restart.
type managedCompleter struct {
	config *config.Manager
}

func (m *managedCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	cfg := m.config.Get().Interpreter
	client := llm.NewClient(llm.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	return client.Complete(ctx, system, user)
}

// managedTokenSource reads the catalog credentials from the live config on
// every token exchange.
type managedTokenSource struct {
	config *config.Manager
}

func (m *managedTokenSource) Token(ctx context.Context) (string, error) {
	cfg := m.config.Get().Catalog
	return spotify.NewAuthenticator(cfg.ClientID, cfg.ClientSecret).Token(ctx)
}

func main() {
	// Load configuration
	cfgManager, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Create the metrics recorder
	var recorder *metrics.Recorder
	if cfgManager.Get().Metrics.Enabled {
		recorder = metrics.NewRecorder()
	}

	// Create the searching service and its collaborators
	interpreterService := interpreting.NewService(&managedCompleter{config: cfgManager}, recorder)
	searchService := searching.NewService(interpreterService, &managedTokenSource{config: cfgManager}, spotify.NewClient(), recorder)

	// Watch the config file so edits apply without a restart
	configEvents := make(chan watcher.FileEvent, 1)
	configWatcher, err := watcher.NewWatcher(configEvents)
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
	} else if err := configWatcher.Start(context.Background(), configPath); err != nil {
		slog.Error("Failed to start config watcher", "error", err)
	} else {
		defer configWatcher.Stop()
		go func() {
			for range configEvents {
				if err := cfgManager.Reload(configPath); err != nil {
					slog.Error("Config reload failed, keeping previous config", "error", err)
				}
			}
		}()
	}

	// Create and start the Telegram bot if enabled
	var telegramBot *hosting.TelegramBot
	if cfgManager.Get().Telegram.Enabled {
		var err error
		telegramBot, err = hosting.NewTelegramBot(cfgManager, searchService)
		if err != nil {
			slog.Error("Failed to initialize Telegram bot", "error", err)
		} else {
			go telegramBot.Start()
			slog.Info("Telegram bot started")
		}
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, searchService, recorder)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	// Shutdown the Telegram bot
	if telegramBot != nil {
		telegramBot.Stop()
		slog.Info("Telegram bot stopped")
	}

	// Shutdown the server
	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
