package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("WINSTACK_CONFIG", filepath.Join(dir, "config.toml"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 250, cfg.TickRateMS)
	require.True(t, cfg.ShowCursor)
	require.False(t, cfg.RawMode)
	require.False(t, cfg.AlternateScreen)
	require.Equal(t, 256, cfg.EventQueueSize)
	require.Equal(t, BackendANSI, cfg.Backend)
	require.False(t, cfg.Escape.Enabled)
	require.Equal(t, []string{"esc"}, cfg.Escape.Keys)
	require.Equal(t, filepath.Join(dir, ".local", "share", "winstack", "journal.db"), cfg.Journal.Path)
	require.Nil(t, cfg.KeyRegistry())

	s := cfg.Settings()
	require.Equal(t, 250*time.Millisecond, s.TickRate)
	require.True(t, s.Mode().ShowCursor)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	data := []byte(`
tick_rate_ms = 100
raw_mode = true
alternate_screen = true
show_cursor = false
backend = "tcell"

[escape]
enabled = true
keys = ["esc", "ctrl+c"]

[log]
level = "debug"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), data, 0o600))
	t.Setenv("WINSTACK_TICK_RATE_MS", "40")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 40, cfg.TickRateMS)
	require.True(t, cfg.RawMode)
	require.True(t, cfg.AlternateScreen)
	require.False(t, cfg.ShowCursor)
	require.Equal(t, BackendTcell, cfg.Backend)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, []string{"esc", "ctrl+c"}, cfg.Escape.Keys)

	reg := cfg.KeyRegistry()
	require.NotNil(t, reg)
	require.True(t, reg.IsAction("ctrl+c", "close", "window"))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("tick_rate_ms = 0\n"), 0o600))
	_, err := Load()
	require.ErrorContains(t, err, "tick_rate_ms")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("backend = \"curses\"\n"), 0o600))
	_, err = Load()
	require.ErrorContains(t, err, "unknown backend")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("tick_rate_ms = = 3\n"), 0o600))
	_, err := Load()
	require.ErrorContains(t, err, "read config")
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	require.NoError(t, err)
	cfg.TickRateMS = 75
	cfg.AlternateScreen = true
	cfg.Journal.Enabled = true

	require.NoError(t, Save(cfg))
	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, 75, again.TickRateMS)
	require.True(t, again.AlternateScreen)
	require.True(t, again.Journal.Enabled)
}
