// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dex configuration.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultFavoritesFile is the default favorites database file name.
	DefaultFavoritesFile = "favorites.db"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog,omitempty"`
	Locale    LocaleConfig    `yaml:"locale,omitempty"`
	Favorites FavoritesConfig `yaml:"favorites,omitempty"`
	Log       LogConfig       `yaml:"log,omitempty"`
}

// CatalogConfig holds configuration for the remote species catalog.
type CatalogConfig struct {
	BaseURL         string        `yaml:"base_url,omitempty"`
	Timeout         time.Duration `yaml:"timeout,omitempty"`
	UserAgent       string        `yaml:"user_agent,omitempty"`
	ListLimit       int           `yaml:"list_limit,omitempty"`
	ListConcurrency int           `yaml:"list_concurrency,omitempty"`
	SpriteBaseURL   string        `yaml:"sprite_base_url,omitempty"`
}

// LocaleConfig holds name resolution settings.
type LocaleConfig struct {
	// Preferred is a BCP 47 tag such as "ko" or "ja-Hrkt".
	Preferred string `yaml:"preferred,omitempty"`
}

// FavoritesConfig holds configuration for the favorites store.
type FavoritesConfig struct {
	// Path is the SQLite file. Empty means DefaultFavoritesFile in the config dir.
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:         "https://pokeapi.co/api/v2",
			Timeout:         10 * time.Second,
			UserAgent:       "dex-core",
			ListLimit:       721,
			ListConcurrency: 16,
			SpriteBaseURL:   "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon",
		},
		Locale: LocaleConfig{
			Preferred: "ko",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .dex directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DEX_API_URL"); v != "" {
		c.Catalog.BaseURL = v
	}
	if v := os.Getenv("DEX_LOCALE"); v != "" {
		c.Locale.Preferred = v
	}
	if v := os.Getenv("DEX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Catalog.BaseURL, "http://") && !strings.HasPrefix(c.Catalog.BaseURL, "https://") {
		return fmt.Errorf("catalog.base_url must be an http(s) URL, got %q", c.Catalog.BaseURL)
	}
	if c.Catalog.Timeout <= 0 {
		return errors.New("catalog.timeout must be positive")
	}
	if c.Catalog.ListLimit <= 0 {
		return errors.New("catalog.list_limit must be positive")
	}
	if c.Catalog.ListConcurrency <= 0 {
		return errors.New("catalog.list_concurrency must be positive")
	}
	if _, err := language.Parse(c.Locale.Preferred); err != nil {
		return fmt.Errorf("locale.preferred %q: %w", c.Locale.Preferred, err)
	}
	return nil
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// FavoritesPath returns the favorites database path, honoring an explicit override.
func (c *Config) FavoritesPath(basePath string) string {
	if c.Favorites.Path != "" {
		return c.Favorites.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultFavoritesFile)
}
