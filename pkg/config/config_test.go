package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3030", cfg.CLI.BaseURL)
	assert.Equal(t, "/ui/api", cfg.CLI.LinksPath)
	assert.Equal(t, time.Duration(0), cfg.Timeout())

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config file is written on first load")
}

func TestLoadFromMergesMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cli]\nbase_url = \"http://links.internal\"\nrequest_timeout = 5\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://links.internal", cfg.CLI.BaseURL)
	assert.Equal(t, "/ui/api", cfg.CLI.LinksPath)
	assert.Equal(t, 3030, cfg.API.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("LINK_ADMIN_BASE_URL", "http://env.example.com")
	t.Setenv("LINK_ADMIN_LINKS_PATH", "/links")
	t.Setenv("LINK_ADMIN_API_PORT", "9090")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.CLI.BaseURL)
	assert.Equal(t, "/links", cfg.CLI.LinksPath)
	assert.Equal(t, 9090, cfg.API.Port)
}

func TestLoadFromRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cli\nbase_url ="), 0644))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("LINK_ADMIN_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	cfg := DefaultConfig()
	cfg.CLI.BaseURL = "http://saved.example.com"
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://saved.example.com", loaded.CLI.BaseURL)
}
