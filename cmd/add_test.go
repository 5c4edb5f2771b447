package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xMohnad/SManga/internal/catalog"
	"github.com/xMohnad/SManga/internal/config"
)

func writeMangaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manga.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAddAcceptsUnregisteredSpiderArg(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := writeMangaFile(t, `{"title": "Test", "link": "http://x/1"}`)
	require.NoError(t, runAdd(nil, []string{path, "example_spider"}))

	store := catalog.NewStore(config.CatalogPath())
	entries, err := store.Entries("example_spider")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Test", entries[0].Title)
}

func TestAddAcceptsUnregisteredSourceHint(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := writeMangaFile(t, `{
		"details": {"source": "customsite", "manganame": "X", "link": "https://custom.site/x"},
		"chapters": [{"title": "Chapter 1", "document_location": "https://custom.site/x/1"}]
	}`)
	require.NoError(t, runAdd(nil, []string{path}))

	store := catalog.NewStore(config.CatalogPath())
	entries, err := store.Entries("customsite")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestAddCanonicalizesRegisteredSpider(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := writeMangaFile(t, `{"title": "Test", "link": "http://x/1"}`)
	require.NoError(t, runAdd(nil, []string{path, "AZORA"}))

	store := catalog.NewStore(config.CatalogPath())
	entries, err := store.Entries("azora")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
