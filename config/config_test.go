// ABOUTME: Tests for config loading, env overrides and validation
// ABOUTME: Uses temp files and t.Setenv so nothing touches the real XDG dirs
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBase, cfg.APIBase)
	assert.Equal(t, DefaultAuthBase, cfg.AuthBase)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "US", cfg.PhoneRegion)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.APIBase = "https://x8ki.example.com/api:v1/"
	cfg.PhoneRegion = "gb"
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://x8ki.example.com/api:v1", loaded.APIBase)
	assert.Equal(t, "GB", loaded.PhoneRegion)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base":"http://file.test/api","log_level":"info"}`), 0600))

	t.Setenv("BILLFOLD_API_BASE", "http://env.test/api")
	t.Setenv("BILLFOLD_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.test/api", cfg.APIBase)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultAuthBase, cfg.AuthBase)
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BILLFOLD_AUTH_BASE", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BILLFOLD_AUTH_BASE=http://dotenv.test\n"), 0600))
	require.NoError(t, os.Unsetenv("BILLFOLD_AUTH_BASE"))

	cfg, err := Load(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv.test", cfg.AuthBase)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.APIBase = "localhost:8787"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.AuthBase = "ftp://example.com"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LogLevel = "chatty"
	assert.Error(t, cfg.Validate())
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "resource", "client")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "resource=client")
}
