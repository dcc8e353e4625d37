package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Manager holds the application configuration and provides thread-safe access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new Manager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Update swaps in a new configuration.
func (m *Manager) Update(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldConfig := m.config
	m.config = config

	// Log configuration changes
	if oldConfig != nil {
		slog.Debug("Configuration updated",
			"logger_level_changed", oldConfig.Logger.Level != config.Logger.Level,
			"interpreter_changed", oldConfig.Interpreter != config.Interpreter,
			"catalog_credentials_changed", oldConfig.Catalog != config.Catalog,
			"telegram_enabled_changed", oldConfig.Telegram.Enabled != config.Telegram.Enabled,
		)
	}
}

// Reload re-reads the configuration file and swaps it in. A file that fails
// to decode or validate leaves the previous configuration in place.
func (m *Manager) Reload(path string) error {
	cfg, err := readConfig(path)
	if err != nil {
		return err
	}
	m.Update(cfg)
	return nil
}

// Save persists the current configuration to the file at path. Values are
// written as-is; redaction applies only to the read surfaces.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create config file", "path", path, "error", err)
		return err
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(m.config); err != nil {
		slog.Error("failed to encode config", "path", path, "error", err)
		return err
	}

	slog.Info("Configuration saved", "path", path)
	return nil
}

// redactedCfg returns a copy of the config with secret values masked.
func redactedCfg(cfg Config) Config {
	cfg.Interpreter.APIKey = "<redacted>"
	cfg.Catalog.ClientSecret = "<redacted>"
	cfg.Telegram.Token = "<redacted>"
	return cfg
}

// GetJSON returns the current configuration as a JSON string.
func (m *Manager) GetJSON() string {
	m.mu.RLock()
	cfg := redactedCfg(*m.config)
	m.mu.RUnlock()

	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		slog.Error("failed to marshal config to JSON", "error", err)
		return err.Error()
	}
	return string(jsonBytes)
}

// GetYAML returns the current configuration as a YAML string.
func (m *Manager) GetYAML() string {
	m.mu.RLock()
	cfg := redactedCfg(*m.config)
	m.mu.RUnlock()

	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		slog.Error("failed to marshal config to YAML", "error", err)
		return err.Error()
	}
	return string(yamlBytes)
}
