package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseEntriesFileArray(t *testing.T) {
	path := writeInput(t, "manga.json", `[
		{"title": "A", "link": "https://a/1", "spider": "azora"},
		{"title": "B", "link": "https://b/1"}
	]`)

	entries, hint, err := ParseEntriesFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "azora", hint)
	assert.Equal(t, "A", entries[0].Title)
	assert.NotNil(t, entries[1].Chapters)
}

func TestParseEntriesFileSingleObject(t *testing.T) {
	path := writeInput(t, "one.json", `{"title": "Solo", "link": "https://a/solo"}`)

	entries, hint, err := ParseEntriesFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, hint)
	assert.Equal(t, "Solo", entries[0].Title)
}

func TestParseEntriesFileScrapedDocument(t *testing.T) {
	path := writeInput(t, "one-piece.json", `{
		"details": {
			"source": "mangalek",
			"manganame": "One Piece",
			"link": "https://lekmanga.net/manga/one-piece",
			"cover": "https://lekmanga.net/cover.jpg"
		},
		"chapters": [
			{"title": "Chapter 1", "document_location": "https://lekmanga.net/one-piece/1"},
			{"title": "Chapter 2", "document_location": "https://lekmanga.net/one-piece/2"}
		]
	}`)

	entries, hint, err := ParseEntriesFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "mangalek", hint)
	e := entries[0]
	assert.Equal(t, "One Piece", e.Title)
	assert.Equal(t, "https://lekmanga.net/manga/one-piece", e.Link)
	assert.Equal(t, "one-piece.json", e.File)
	require.Len(t, e.Chapters, 2)
	assert.Equal(t, "Chapter 2", e.LastChapter().Label)
}

func TestParseEntriesFileDocumentWithoutLink(t *testing.T) {
	path := writeInput(t, "old.json", `{
		"details": {"source": "azora", "manganame": "Old Format"},
		"chapters": [
			{"title": "Chapter 9", "document_location": "https://a/9"},
			{"title": "Chapter 10", "document_location": "https://a/10"}
		]
	}`)

	entries, _, err := ParseEntriesFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://a/10", entries[0].Link)
}

func TestParseEntriesFileMissingFields(t *testing.T) {
	path := writeInput(t, "bad.json", `[
		{"title": "Fine", "link": "https://a/1"},
		{"title": "No Link"}
	]`)

	_, _, err := ParseEntriesFile(path)
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, 1, ferr.Index)
	assert.Equal(t, "link", ferr.Field)
}

func TestParseEntriesFileEmpty(t *testing.T) {
	path := writeInput(t, "empty.json", "   ")

	_, _, err := ParseEntriesFile(path)
	assert.Error(t, err)
}

func TestParseEntriesFileNotJSON(t *testing.T) {
	path := writeInput(t, "junk.json", "hello")

	_, _, err := ParseEntriesFile(path)
	assert.Error(t, err)
}

func TestParseEntriesFileMissing(t *testing.T) {
	_, _, err := ParseEntriesFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
