package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPSHELL_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "appshell", c.UI.Title)
	require.Equal(t, "/", c.UI.InitialRoute)
	require.Equal(t, []string{"en_US"}, c.Locale.Supported)
	require.True(t, c.Display.Banner)
	require.False(t, c.Display.Inspector)
	require.Equal(t, "debug", c.Build.Mode)
	require.Equal(t, 5*time.Second, c.Platform.MemoryInterval)
	require.Equal(t, "journal.db", filepath.Base(c.Journal.Path))
	require.False(t, c.Log.Development)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
title = "Orders"
initial_route = "/orders/recent"

[locale]
supported = ["fr_FR", "en_US"]

[display]
inspector = true
banner = false

[log]
development = true

[platform]
memory_threshold_mb = 256
memory_interval = "1s"
`), 0o600))
	t.Setenv("APPSHELL_CONFIG", path)
	t.Setenv("APPSHELL_BUILD_MODE", "release")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Orders", c.UI.Title)
	require.Equal(t, "/orders/recent", c.UI.InitialRoute)
	require.Equal(t, []string{"fr_FR", "en_US"}, c.Locale.Supported)
	require.True(t, c.Display.Inspector)
	require.False(t, c.Display.Banner)
	require.Equal(t, "release", c.Build.Mode)
	require.Equal(t, uint64(256), c.Platform.MemoryThresholdMB)
	require.Equal(t, time.Second, c.Platform.MemoryInterval)
	require.True(t, c.Log.Development)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("APPSHELL_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load()
	require.Error(t, err)
}
