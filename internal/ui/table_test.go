package ui

import (
	"strings"
	"testing"

	"github.com/xMohnad/SManga/internal/catalog"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}

	if got := Truncate("a very long manga title", 10); got != "a very ..." {
		t.Errorf("unexpected truncation %q", got)
	}

	// must not split multibyte runes
	if got := Truncate("قصة المغامرات الطويلة جدا", 10); len([]rune(got)) != 10 {
		t.Errorf("expected 10 runes, got %q", got)
	}
}

func TestRenderEntriesTable(t *testing.T) {
	out := RenderEntriesTable([]catalog.Entry{
		{
			Spider: "azora",
			Title:  "Tower of God",
			Link:   "https://a/tog",
			Chapters: []catalog.Chapter{
				{Label: "Chapter 7", URL: "https://a/tog/7"},
			},
		},
	})

	for _, want := range []string{"azora", "Tower of God", "Chapter 7", "1"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}
