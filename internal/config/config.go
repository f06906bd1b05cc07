// Package config loads the operator's Warden configuration from
// ~/.warden/config.yaml: console preferences and named handler presets.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	// NoColor disables colored output everywhere.
	NoColor bool `yaml:"no_color"`

	// HistorySize caps the console's command history.
	HistorySize int `yaml:"history_size"`

	// Presets are named handler launch bundles, usable with
	// `handler --preset <name>`.
	Presets map[string]Preset `yaml:"presets"`
}

// Preset is a named bundle of handler launch defaults.
type Preset struct {
	Payload       string `yaml:"payload"`
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	Encoder       string `yaml:"encoder,omitempty"`
	ExitOnSession bool   `yaml:"exit_on_session,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{HistorySize: 200}
}

// Dir returns the Warden configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".warden"
	}
	return filepath.Join(home, ".warden")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file at path. A missing file is not an error;
// defaults are returned so a fresh install works without setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = Default().HistorySize
	}

	return cfg, nil
}
