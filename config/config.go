package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"futuremodern/models"
)

const (
	DefaultTitle     = "The Future Modern"
	DefaultMaxItems  = 200
	DefaultTimeout   = 30 * time.Second
	DefaultDelay     = 500 * time.Millisecond
	DefaultUserAgent = "TheFutureModern/1.0 (static feed aggregator)"
)

// Config holds the feed list and page metadata from the TOML config file,
// plus the pipeline tunables. The tunables are not read from the file; they
// default to the values above and exist so tests and callers can override
// them explicitly instead of reaching into package globals.
type Config struct {
	Title       string          `toml:"title"`
	Description string          `toml:"description"`
	Feeds       []models.Source `toml:"feeds"`

	MaxItems     int           `toml:"-"`
	FetchTimeout time.Duration `toml:"-"`
	FetchDelay   time.Duration `toml:"-"`
	UserAgent    string        `toml:"-"`
}

// Default returns a config with no feeds and the documented defaults.
func Default() *Config {
	return &Config{
		Title:        DefaultTitle,
		MaxItems:     DefaultMaxItems,
		FetchTimeout: DefaultTimeout,
		FetchDelay:   DefaultDelay,
		UserAgent:    DefaultUserAgent,
	}
}

// Load reads and validates the TOML config at path. A missing or malformed
// file is an error for the whole run, unlike per-feed fetch failures.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	for i, feed := range cfg.Feeds {
		if feed.Name == "" || feed.URL == "" {
			return nil, fmt.Errorf("feed %d: name and url are required", i)
		}
	}

	return cfg, nil
}
