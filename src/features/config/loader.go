package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a new Manager.
// If the file doesn't exist, a default configuration is created there.
func Load(path string) (*Manager, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)

		cfg := defaultConfig
		manager := NewManager(&cfg)
		if err := manager.Save(path); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}

		// Overrides come after Save so environment secrets never land
		// in the bootstrap file.
		applyEnvOverrides(&cfg)
		return manager, nil
	}

	cfg, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	return NewManager(cfg), nil
}

// readConfig decodes, validates and env-overrides the file at path. Reloads
// go through here too, so a hot-edited file gets the same checks as startup.
func readConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Override with environment variables if set
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides lets the process environment trump the file for secrets.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("DEEPSEEK_API_KEY"); key != "" {
		cfg.Interpreter.APIKey = key
	}
	if id := os.Getenv("SPOTIFY_CLIENT_ID"); id != "" {
		cfg.Catalog.ClientID = id
	}
	if secret := os.Getenv("SPOTIFY_CLIENT_SECRET"); secret != "" {
		cfg.Catalog.ClientSecret = secret
	}
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
}
