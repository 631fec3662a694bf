package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	pathtidy "github.com/Digital-Shane/path-tidy"
)

// Config holds the persisted CLI defaults. Command-line flags override these
// values per invocation.
type Config struct {
	Platform      string `json:"platform"`
	Replacement   string `json:"replacement"`
	CheckReserved bool   `json:"check_reserved"`
	Normalize     bool   `json:"normalize"`
}

// DefaultConfig returns the default CLI configuration.
func DefaultConfig() *Config {
	return &Config{
		Platform:      "universal",
		Replacement:   "",
		CheckReserved: true,
		Normalize:     true,
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".path-tidy", "config.json"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// EngineOptions converts the persisted defaults into engine options.
func (c *Config) EngineOptions() ([]pathtidy.Option, error) {
	platform, err := pathtidy.ParsePlatform(c.Platform)
	if err != nil {
		return nil, err
	}
	return []pathtidy.Option{
		pathtidy.WithPlatform(platform),
		pathtidy.WithReservedNameCheck(c.CheckReserved),
		pathtidy.WithNormalize(c.Normalize),
	}, nil
}
