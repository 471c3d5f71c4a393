// Package config loads Amity's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvVarConfig overrides the config file location.
const EnvVarConfig = "AMITY_CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidColor indicates an unknown color mode.
var ErrInvalidColor = errors.New("color must be auto, always or never")

// ErrInvalidLogLevel indicates an unknown log level.
var ErrInvalidLogLevel = errors.New("log_level must be debug, info, warn or error")

// Config holds user settings for the amity command.
type Config struct {
	// Seed fixes the random room choice when non-zero.
	Seed uint64 `toml:"seed"`

	// LoadFile is the default people file for load_people.
	LoadFile string `toml:"load_file"`

	// Color controls styled output: auto, always or never.
	Color string `toml:"color"`

	// LogLevel is the minimum level logged to stderr.
	LogLevel string `toml:"log_level"`

	// Prompt is shown by the interactive shell.
	Prompt string `toml:"prompt"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:     0,
		LoadFile: filepath.Join("data", "load.txt"),
		Color:    ColorAuto,
		LogLevel: "warn",
		Prompt:   "amity> ",
	}
}

// ConfigPath returns the config file location: $AMITY_CONFIG, else
// $XDG_CONFIG_HOME/amity/config.toml, else ~/.config/amity/config.toml.
func ConfigPath() string {
	if p := os.Getenv(EnvVarConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "amity", "config.toml")
}

// Load reads the config at path over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Save writes the config as TOML, creating parent directories.
func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	f, err := os.Create(path) //nolint:gosec // G304: path from trusted config location
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
