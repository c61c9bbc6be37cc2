// Package config loads the settings that shape foreground tracking from a
// TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/foreground/pkg/foreground/constants"
	"github.com/BrandonKowalski/foreground/pkg/foreground/monitor"
)

// FileName is the config file looked up under the config directory.
const FileName = "config.toml"

type Config struct {
	Debug       bool             `toml:"debug"`        // Per-event diagnostics from the monitor
	Ordering    monitor.Ordering `toml:"ordering"`     // "strict" or "relaxed"
	LogLevel    string           `toml:"log_level"`    // debug, info, warn, error
	LogPath     string           `toml:"log_path"`     // Log file; empty logs to stdout only
	Language    string           `toml:"language"`     // BCP 47 tag for notifications
	WindowTitle string           `toml:"window_title"` // Title of the demo window
	PowerDevice string           `toml:"power_device"` // evdev device of the power key; empty disables
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Ordering:    monitor.DefaultOrdering,
		LogLevel:    "info",
		Language:    "en",
		WindowTitle: "Foreground",
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads ~/.foreground/config.toml.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		// No home directory: environment and defaults only
		return Load("")
	}
	return Load(path)
}

// DefaultPath returns the config file location under the user's home.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.ConfigDirName, FileName), nil
}

func (c *Config) applyEnv() error {
	if v, ok := constants.EnvBool(constants.DebugEnvVar); ok {
		c.Debug = v
	}
	if v := os.Getenv(constants.OrderingEnvVar); v != "" {
		o, err := monitor.ParseOrdering(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", constants.OrderingEnvVar, err)
		}
		c.Ordering = o
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.LogPathEnvVar); v != "" {
		c.LogPath = v
	}
	if v := os.Getenv(constants.LanguageEnvVar); v != "" {
		c.Language = v
	}
	if v := os.Getenv(constants.PowerDeviceEnvVar); v != "" {
		c.PowerDevice = v
	}
	return nil
}

// Validate rejects settings the monitor cannot use.
func (c *Config) Validate() error {
	if c.Ordering != monitor.Strict && c.Ordering != monitor.Relaxed {
		return fmt.Errorf("config: %w: %d", monitor.ErrInvalidOrdering, c.Ordering)
	}
	return nil
}

// MonitorOptions converts the settings into monitor options.
func (c *Config) MonitorOptions(logger *slog.Logger) monitor.Options {
	return monitor.Options{
		Ordering: c.Ordering,
		Debug:    c.Debug,
		Logger:   logger,
	}
}
