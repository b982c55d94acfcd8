// Package config loads and stores rawterm settings in the XDG config dir.
// Environment variables override values read from the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"rawterm/cli/internal/xdg"
)

// Environment variables that override the config file.
const (
	EnvLogLevel = "RAWTERM_LOG_LEVEL"
	EnvVerbose  = "RAWTERM_VERBOSE"
)

// Config holds rawterm settings.
type Config struct {
	LogLevel       string `json:"log_level"`
	Verbose        bool   `json:"verbose"`
	FallbackWidth  int    `json:"fallback_width"`
	FallbackHeight int    `json:"fallback_height"`
	LogFile        bool   `json:"log_file"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:       "info",
		FallbackWidth:  80,
		FallbackHeight: 24,
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LogPath returns the path of the debug log file in the XDG state dir.
func LogPath() (string, error) {
	dir, err := xdg.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rawterm.log"), nil
}

// Load reads configuration; missing file returns defaults.
// Environment overrides are applied in both cases.
func Load() (Config, error) {
	c, err := LoadFile()
	if err != nil {
		return c, err
	}
	if err := c.applyEnv(); err != nil {
		return c, err
	}
	c.normalize()
	return c, nil
}

// LoadFile reads configuration without environment overrides, so the result
// can be edited and saved back.
func LoadFile() (Config, error) {
	c := Default()
	p, err := Path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	c.normalize()
	return c, nil
}

// Set updates the setting named by its JSON key from a string value.
func (c *Config) Set(key, value string) error {
	switch key {
	case "log_level":
		c.LogLevel = value
	case "verbose", "log_file":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "verbose" {
			c.Verbose = b
		} else {
			c.LogFile = b
		}
	case "fallback_width", "fallback_height":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s: want a positive integer, got %q", key, value)
		}
		if key == "fallback_width" {
			c.FallbackWidth = n
		} else {
			c.FallbackHeight = n
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		c.Verbose = b
	}
	return nil
}

func (c *Config) normalize() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.FallbackWidth <= 0 {
		c.FallbackWidth = d.FallbackWidth
	}
	if c.FallbackHeight <= 0 {
		c.FallbackHeight = d.FallbackHeight
	}
}
