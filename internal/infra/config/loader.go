// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bigcommunity/taskbot/internal/domain"
)

// Environment variables that override file values.
const (
	EnvToken    = "TASKBOT_TOKEN"
	EnvDBPath   = "TASKBOT_DB"
	EnvLogDir   = "TASKBOT_LOG_DIR"
	EnvLogLevel = "TASKBOT_LOG_LEVEL"
)

// Loader loads configuration from a TOML file with environment overrides.
type Loader struct {
	path string
}

// NewLoader creates a new Loader for the given config file path. An empty
// path skips the file and uses defaults plus environment only.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the merged configuration.
// Precedence: defaults <- file <- environment (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	file, err := l.loadFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if file != nil {
		base = mergeConfigs(base, file)
	}

	applyEnv(base)

	if err := validate(base); err != nil {
		return nil, err
	}
	return base, nil
}

// loadFile loads a configuration from the file. A missing file is reported
// as os.ErrNotExist so the caller can fall back to defaults.
func (l *Loader) loadFile() (*domain.Config, error) {
	if l.path == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	merged := *base
	if override.DBPath != "" {
		merged.DBPath = override.DBPath
	}
	if override.LogDir != "" {
		merged.LogDir = override.LogDir
	}
	if override.LogLevel != "" {
		merged.LogLevel = override.LogLevel
	}
	return &merged
}

func applyEnv(cfg *domain.Config) {
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func validate(cfg *domain.Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
}
