package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv neutralizes overrides that may be set on the host.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DEX_API_URL", "")
	t.Setenv("DEX_LOCALE", "")
	t.Setenv("DEX_LOG_LEVEL", "")
}

func writeConfig(t *testing.T, basePath, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ConfigDir(basePath), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(basePath), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 721, cfg.Catalog.ListLimit)
	assert.Equal(t, 16, cfg.Catalog.ListConcurrency)
	assert.Equal(t, "ko", cfg.Locale.Preferred)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
catalog:
  base_url: http://localhost:8080/api/v2
  timeout: 3s
locale:
  preferred: ja-Hrkt
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "ja-Hrkt", cfg.Locale.Preferred)
	// untouched keys keep their defaults
	assert.Equal(t, 721, cfg.Catalog.ListLimit)
}

func TestLoad_DefaultYAMLRoundTrips(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEX_API_URL", "https://mirror.test/api/v2")
	t.Setenv("DEX_LOCALE", "en")
	t.Setenv("DEX_LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.test/api/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, "en", cfg.Locale.Preferred)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "catalog: [unclosed")

	_, err := Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{
			name:   "bad base url",
			mutate: func(c *Config) { c.Catalog.BaseURL = "ftp://example" },
			errMsg: "base_url",
		},
		{
			name:   "zero timeout",
			mutate: func(c *Config) { c.Catalog.Timeout = 0 },
			errMsg: "timeout",
		},
		{
			name:   "zero list limit",
			mutate: func(c *Config) { c.Catalog.ListLimit = 0 },
			errMsg: "list_limit",
		},
		{
			name:   "zero concurrency",
			mutate: func(c *Config) { c.Catalog.ListConcurrency = 0 },
			errMsg: "list_concurrency",
		},
		{
			name:   "unparseable locale",
			mutate: func(c *Config) { c.Locale.Preferred = "!!" },
			errMsg: "locale.preferred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigDir(t *testing.T) {
	result := ConfigDir("/home/user/project")
	assert.Equal(t, "/home/user/project/.dex", result)
}

func TestConfigFilePath(t *testing.T) {
	result := ConfigFilePath("/home/user/project")
	assert.Equal(t, "/home/user/project/.dex/config.yaml", result)
}

func TestFavoritesPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/srv", ".dex", "favorites.db"), cfg.FavoritesPath("/srv"))

	cfg.Favorites.Path = "/data/favs.db"
	assert.Equal(t, "/data/favs.db", cfg.FavoritesPath("/srv"))
}

func TestWriteDefault_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	err := WriteDefault(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.True(t, Exists(dir))
}

func TestWrite(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfg := Default()
	cfg.Locale.Preferred = "fr"

	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "fr", loaded.Locale.Preferred)
}
