// Package config loads pv settings from a YAML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
)

// Config holds user preferences. Zero values are never used directly;
// Load always starts from Default.
type Config struct {
	DefaultFeet   int             `yaml:"default_feet" env:"PV_DEFAULT_FEET"`
	DefaultInches int             `yaml:"default_inches" env:"PV_DEFAULT_INCHES"`
	Theme         string          `yaml:"theme" env:"PV_THEME"`
	Analytics     AnalyticsConfig `yaml:"analytics"`
}

// AnalyticsConfig controls the optional usage-event store.
type AnalyticsConfig struct {
	Enabled bool   `yaml:"enabled" env:"PV_ANALYTICS"`
	Path    string `yaml:"path" env:"PV_ANALYTICS_PATH"`
}

// Theme names accepted in the config file.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeAuto  = "auto"
)

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DefaultFeet:   model.DefaultFeet,
		DefaultInches: model.DefaultInches,
		Theme:         ThemeAuto,
		Analytics: AnalyticsConfig{
			Path: filepath.Join(stateDir(), "analytics.db"),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pv/config.yaml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".pv", "config.yaml")
	}
	return filepath.Join(dir, "pv", "config.yaml")
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "pv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pv"
	}
	return filepath.Join(home, ".local", "state", "pv")
}

// Load reads the file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects defaults the form could not display.
func (c Config) Validate() error {
	if err := c.DefaultHeight().Validate(); err != nil {
		return fmt.Errorf("default height: %w", err)
	}
	switch c.Theme {
	case ThemeDark, ThemeLight, ThemeAuto:
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}

// DefaultHeight is the selection the form starts with.
func (c Config) DefaultHeight() model.Height {
	return model.Height{Feet: c.DefaultFeet, Inches: c.DefaultInches}
}

// Save writes the config as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
