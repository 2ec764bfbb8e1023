// Package config handles configuration for the apibingo CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats for the final card.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all configuration for apibingo. The pattern catalogue and
// the bingo threshold are fixed; configuration covers input and
// presentation only.
type Config struct {
	// Input is a file of JSON responses to check, "-" for stdin, or empty
	// to play the built-in samples.
	Input string `yaml:"input" env:"APIBINGO_INPUT"`

	// Quiet suppresses the per-response output; only the final card is
	// printed.
	Quiet bool `yaml:"quiet" env:"APIBINGO_QUIET"`

	// Format selects the final output: "text" for the bingo card, "json"
	// for a machine-readable summary.
	Format string `yaml:"format" env:"APIBINGO_FORMAT"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Format: FormatText,
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("APIBINGO_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "apibingo", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "apibingo", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if input := os.Getenv("APIBINGO_INPUT"); input != "" {
		cfg.Input = input
	}

	if format := os.Getenv("APIBINGO_FORMAT"); format != "" {
		cfg.Format = format
	}

	if quiet := os.Getenv("APIBINGO_QUIET"); quiet != "" {
		switch quiet {
		case "true", "1", "yes":
			cfg.Quiet = true
		case "false", "0", "no":
			cfg.Quiet = false
		default:
			return fmt.Errorf("invalid APIBINGO_QUIET value: %q (use true/false)", quiet)
		}
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, cfg.Format)
	}

	return nil
}
