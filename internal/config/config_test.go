package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMergedDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, ".", cfg.Dest)
	assert.Equal(t, CatalogPath(), cfg.Catalog)
	assert.False(t, cfg.Debug)
}

func TestLoadMergedFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(Root(), 0755))
	require.NoError(t, SaveYAML(&Config{
		Dest:      "/from/file",
		UserAgent: "file-agent",
	}, File()))

	cfg, used, err := LoadMerged(Options{Dest: "/from/flag", Debug: true})
	require.NoError(t, err)
	assert.Equal(t, File(), used)
	assert.Equal(t, "/from/flag", cfg.Dest)
	assert.Equal(t, "file-agent", cfg.UserAgent)
	assert.True(t, cfg.Debug)
}

func TestLoadMergedIgnoreConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(Root(), 0755))
	require.NoError(t, SaveYAML(&Config{Dest: "/from/file"}, File()))

	cfg, _, err := LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Dest)
}

func TestLoadMergedBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(Root(), 0755))
	require.NoError(t, os.WriteFile(File(), []byte(":\n\t- not yaml"), 0644))

	_, _, err := LoadMerged(Options{})
	assert.Error(t, err)
}

func TestPathsUnderConfigRoot(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("APPDATA", "")

	assert.Equal(t, filepath.Join("/tmp/xdg", "smanga"), Root())
	assert.Equal(t, filepath.Join(Root(), "config.yaml"), File())
	assert.Equal(t, filepath.Join(Root(), "catalog.json"), CatalogPath())
}
