package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TUBESCOUT_BACKEND_MODE", "")
	t.Setenv("TUBESCOUT_BACKEND_ENDPOINT", "")
	return dir
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := isolateConfig(t)
	cmd, opts := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--backend", "http",
		"--endpoint", "http://localhost:8080",
		"--timeout", "15s",
		"--language", "fr",
		"--prefs", "",
		"--log-file", "",
		"--no-alt-screen",
	}))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Backend.Mode)
	assert.Equal(t, "http://localhost:8080", cfg.Backend.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout.Duration)
	assert.Equal(t, "fr", cfg.UI.DefaultLanguage)
	assert.Empty(t, cfg.Preferences.Path)
	assert.Empty(t, cfg.Log.File)
	assert.False(t, cfg.UI.AltScreen)
}

func TestUnsetFlagsKeepDefaults(t *testing.T) {
	dir := isolateConfig(t)
	cmd, opts := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", filepath.Join(dir, "missing.toml")}))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Backend.Mode)
	assert.Equal(t, 60*time.Second, cfg.Backend.Timeout.Duration)
	assert.True(t, cfg.UI.AltScreen)
}

func TestInvalidFlagIsRejected(t *testing.T) {
	dir := isolateConfig(t)
	cmd, opts := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--backend", "http",
	}))

	_, err := loadConfig(cmd, opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend.endpoint")
}

func TestFlagsRepairInvalidConfigFile(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "config.toml")
	body := "[backend]\nmode = \"http\"\n\n[ui]\ndefault_language = \"tlh\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cmd, opts := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))
	_, err := loadConfig(cmd, opts)
	require.Error(t, err)

	cmd, opts = newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", path,
		"--backend", "demo",
		"--language", "es",
	}))
	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Backend.Mode)
	assert.Equal(t, "es", cfg.UI.DefaultLanguage)
}
