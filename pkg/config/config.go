package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. File values overlay the
// built-in defaults.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if len(cfg.Engine) == 0 {
		return errors.New("engine: command must not be empty")
	}
	if len(cfg.Viewer) == 0 {
		return errors.New("viewer: command must not be empty")
	}
	if cfg.Width <= 0 {
		return fmt.Errorf("width: must be positive, got %d", cfg.Width)
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("height: must be positive, got %d", cfg.Height)
	}
	return nil
}
