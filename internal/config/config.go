// Package config handles TOML-based configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"vidembed/internal/httputil"
)

// Config holds all application configuration.
type Config struct {
	OEmbedEndpoint string `toml:"oembed_endpoint"`
	OEmbedWidth    int    `toml:"oembed_width"`
	Autoplay       bool   `toml:"autoplay"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	Concurrency    int    `toml:"concurrency"`
	Debug          bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		OEmbedEndpoint: "http://vimeo.com/api/oembed.xml",
		OEmbedWidth:    640,
		Autoplay:       true,
		TimeoutSeconds: 10,
		Concurrency:    4,
		Debug:          false,
	}
}

const appName = "vidembed"

// PathEnv names an environment variable that overrides the config file location.
const PathEnv = "VIDEMBED_CONFIG"

// ConfigPath returns the config file location: $VIDEMBED_CONFIG if set,
// otherwise config.toml under the XDG config home.
func ConfigPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}

	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating config home: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName, "config.toml"), nil
}

// Load decodes the config file found by ConfigPath over the defaults.
// An unresolvable path or a missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile decodes path over the defaults and validates the result.
// Keys the Config does not know are rejected so typos do not go unnoticed.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if err := httputil.ValidateURL(c.OEmbedEndpoint); err != nil {
		return fmt.Errorf("oembed_endpoint: %w", err)
	}
	if c.OEmbedWidth <= 0 || c.OEmbedWidth > 4096 {
		return fmt.Errorf("oembed_width %d out of range (1-4096)", c.OEmbedWidth)
	}
	if c.TimeoutSeconds < 1 || c.TimeoutSeconds > 120 {
		return fmt.Errorf("timeout_seconds %d out of range (1-120)", c.TimeoutSeconds)
	}
	if c.Concurrency < 1 || c.Concurrency > 32 {
		return fmt.Errorf("concurrency %d out of range (1-32)", c.Concurrency)
	}
	return nil
}

// Timeout returns the remote lookup timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
