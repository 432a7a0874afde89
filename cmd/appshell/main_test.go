package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/appshell/internal/config"
	"github.com/jask/appshell/internal/journal"
	"github.com/jask/appshell/internal/shell"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	var cfg config.Config
	cfg.UI.Title = "appshell"
	cfg.UI.Color = "#89b4fa"
	cfg.UI.InitialRoute = "/"
	cfg.Locale.Supported = []string{"en_US"}
	cfg.Build.Mode = "debug"
	cfg.Journal.Path = filepath.Join(dir, "journal.db")
	cfg.Log.Level = "info"
	cfg.Log.Path = filepath.Join(dir, "appshell.log")
	return cfg
}

func TestShellOptionsFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Locale.Supported = []string{"fr_FR", "en_US"}
	cfg.Locale.Override = "de_DE"
	cfg.Build.Mode = "release"

	opts, err := shellOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, "fr_FR,en_US", opts.SupportedLocales.String())
	require.NotNil(t, opts.Locale)
	require.Equal(t, "de_DE", opts.Locale.String())
	require.False(t, opts.SupportedLocales.Contains(*opts.Locale))
	require.Equal(t, shell.Release, opts.BuildMode)
	require.NotEmpty(t, opts.KeyBindings)
}

func TestShellOptionsRejectsBadMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Build.Mode = "turbo"
	_, err := shellOptions(cfg)
	require.Error(t, err)
}

func TestRunReturnsErrorAfterJournalOpened(t *testing.T) {
	cfg := testConfig(t)
	cfg.UI.Color = ""

	err := run(context.Background(), cfg)
	require.ErrorIs(t, err, shell.ErrMissingColor)

	// the journal was closed on the way out and opens cleanly again
	j, err := journal.New(cfg.Journal.Path)
	require.NoError(t, err)
	require.NoError(t, j.Close())
}

func TestPrintJournal(t *testing.T) {
	cfg := testConfig(t)
	j, err := journal.New(cfg.Journal.Path)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, j.Record(ctx, "mount", "en_US"))
	require.NoError(t, j.Record(ctx, "push-route", "/settings"))
	require.NoError(t, j.Close())

	var out bytes.Buffer
	require.NoError(t, printJournal(ctx, &out, cfg, []string{"1"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "/settings")

	require.Error(t, printJournal(ctx, &out, cfg, []string{"many"}))
}
