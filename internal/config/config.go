// Package config loads the search service settings from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const EnvConfigPath = "CONFIG_PATH"

// Config - настройки minigrepd; всё, что не задано в файле, берется из Default()
type Config struct {
	Env             string        `yaml:"env"`
	Address         string        `yaml:"address"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

func Default() Config {
	return Config{
		Env:             "local",
		Address:         ":8080",
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    10 << 20,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Address == "":
		return errors.New("empty service address")
	case c.ShutdownTimeout <= 0:
		return errors.New("shutdown_timeout must be positive")
	case c.MaxBodyBytes <= 0:
		return errors.New("max_body_bytes must be positive")
	}
	return nil
}
