package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "phonebook.json", cfg.Storage.Path)
	assert.True(t, cfg.Storage.CreateIfMissing)
	assert.Equal(t, 10*time.Second, cfg.Storage.SaveTimeout)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, time.Minute, cfg.Security.RateLimitWindow)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.App.IsDevelopment())
}

func TestLoad_ConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "phonebook.yaml")
	content := `
server:
  port: 9000
  host: 127.0.0.1
storage:
  path: /var/lib/phonebook/db.json
  create_if_missing: false
logger:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address())
	assert.Equal(t, "/var/lib/phonebook/db.json", cfg.Storage.Path)
	assert.False(t, cfg.Storage.CreateIfMissing)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phonebook.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nport = 9000\n"), 0o644))

	t.Setenv("PHONEBOOK_SERVER_PORT", "4000")
	t.Setenv("PHONEBOOK_FILE", "/tmp/other.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.json", cfg.Storage.Path)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PHONEBOOK_SERVER_PORT", "70000")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load("")
		require.Error(t, err)
	})
}
