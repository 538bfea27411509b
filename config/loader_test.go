package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestLoader(t *testing.T) (*Loader, string, string) {
	t.Helper()
	home := t.TempDir()
	work := filepath.Join(t.TempDir(), "project", "sub")
	require.NoError(t, os.MkdirAll(work, 0755))

	l := NewLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.HomeDir = home
	l.WorkDir = work
	return l, home, work
}

func TestLoaderDefaults(t *testing.T) {
	l, _, _ := newTestLoader(t)

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoaderLayers(t *testing.T) {
	l, home, work := newTestLoader(t)

	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), `
ingest:
  delimiter: whitespace
log:
  level: debug
`)
	// Found by walking up from WorkDir
	writeFile(t, filepath.Join(filepath.Dir(work), ProjectConfigFile), `
ingest:
  on_unrecognized: skip
`)

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "whitespace", cfg.Ingest.Delimiter, "user layer survives a project file that does not set it")
	assert.Equal(t, "skip", cfg.Ingest.OnUnrecognized)
	assert.Equal(t, 1, cfg.Ingest.TagColumn)
	assert.Equal(t, "debug", cfg.Log.Level)

	override := filepath.Join(t.TempDir(), "override.yaml")
	writeFile(t, override, `
ingest:
  delimiter: tab
  tag_column: -1
`)

	cfg, err = l.LoadWithOverride(override)
	require.NoError(t, err)
	assert.Equal(t, "tab", cfg.Ingest.Delimiter)
	assert.Equal(t, -1, cfg.Ingest.TagColumn)
	assert.Equal(t, "skip", cfg.Ingest.OnUnrecognized)
}

func TestLoaderOverrideMissing(t *testing.T) {
	l, _, _ := newTestLoader(t)

	_, err := l.LoadWithOverride(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoaderInvalidResult(t *testing.T) {
	l, home, _ := newTestLoader(t)
	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), "ingest:\n  delimiter: comma\n")

	_, err := l.Load()
	assert.Error(t, err)
}

func TestEnsureUserConfig(t *testing.T) {
	l, home, _ := newTestLoader(t)

	path, err := l.EnsureUserConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, UserConfigDir, UserConfigFile), path)

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)

	// Existing files are left alone
	writeFile(t, path, "log:\n  level: warn\n")
	_, err = l.EnsureUserConfig()
	require.NoError(t, err)

	loaded, err = LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", loaded.Log.Level)
}
