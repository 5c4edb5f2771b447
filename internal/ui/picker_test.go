package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xMohnad/SManga/internal/catalog"
)

func pickerFixture(t *testing.T) (*Picker, *catalog.Store) {
	t.Helper()

	store := catalog.NewStore(filepath.Join(t.TempDir(), "catalog.json"))

	_, err := store.Merge("azora", []catalog.Entry{
		{Title: "Alpha", Link: "https://a/alpha", Chapters: []catalog.Chapter{{Label: "Chapter 1", URL: "https://a/alpha/1"}}},
		{Title: "Beta", Link: "https://a/beta", Chapters: []catalog.Chapter{}},
	})
	if err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	p, err := NewPicker(store, "")
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	return p, store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPickerEmptyState(t *testing.T) {
	store := catalog.NewStore(filepath.Join(t.TempDir(), "catalog.json"))

	p, err := NewPicker(store, "")
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}

	if !strings.Contains(p.View(), "No manga saved yet.") {
		t.Errorf("expected empty state message, got:\n%s", p.View())
	}
}

func TestPickerNavigationWraps(t *testing.T) {
	p, _ := pickerFixture(t)

	if p.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", p.cursor)
	}

	p.Update(key("j"))
	if p.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", p.cursor)
	}

	p.Update(key("j"))
	if p.cursor != 0 {
		t.Errorf("expected cursor to wrap to 0, got %d", p.cursor)
	}

	p.Update(key("k"))
	if p.cursor != 1 {
		t.Errorf("expected cursor to wrap back to 1, got %d", p.cursor)
	}
}

func TestPickerSelect(t *testing.T) {
	p, _ := pickerFixture(t)

	p.Update(key("enter"))

	choice := p.Choice()
	if choice == nil {
		t.Fatal("expected a choice after enter")
	}
	if choice.Title != "Alpha" {
		t.Errorf("expected Alpha, got %q", choice.Title)
	}
	if choice.LastChapter().URL != "https://a/alpha/1" {
		t.Errorf("unexpected resume link %q", choice.LastChapter().URL)
	}
}

func TestPickerFilter(t *testing.T) {
	p, _ := pickerFixture(t)

	p.filter.SetValue("bet")
	p.applyFilter()

	if len(p.visible) != 1 {
		t.Fatalf("expected 1 visible entry, got %d", len(p.visible))
	}
	if p.visible[0].Title != "Beta" {
		t.Errorf("expected Beta, got %q", p.visible[0].Title)
	}

	p.filter.SetValue("")
	p.applyFilter()
	if len(p.visible) != 2 {
		t.Errorf("expected filter reset to show 2 entries, got %d", len(p.visible))
	}
}

func TestPickerDelete(t *testing.T) {
	p, store := pickerFixture(t)

	p.Update(key("ctrl+d"))

	if len(p.visible) != 1 {
		t.Fatalf("expected 1 entry after delete, got %d", len(p.visible))
	}

	entries, err := store.Entries("")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Beta" {
		t.Errorf("expected only Beta left in the store, got %v", entries)
	}
}

func TestPickerEditUpdatesStore(t *testing.T) {
	p, store := pickerFixture(t)

	p.Update(key("e"))
	if p.mode != modeEdit {
		t.Fatal("expected edit mode")
	}

	p.editInputs[editTitle].SetValue("Alpha Renamed")
	p.Update(key("enter"))

	if p.mode != modeBrowse {
		t.Fatal("expected browse mode after save")
	}

	entries, err := store.Entries("")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	for _, e := range entries {
		if e.Link == "https://a/alpha" && e.Title != "Alpha Renamed" {
			t.Errorf("expected renamed title, got %q", e.Title)
		}
	}
}

func TestPickerEditRejectedKeepsEntry(t *testing.T) {
	p, store := pickerFixture(t)

	p.Update(key("e"))
	p.editInputs[editTitle].SetValue("   ")
	p.editInputs[editLink].SetValue("https://a/alpha-moved")
	p.Update(key("enter"))

	if p.err == nil {
		t.Fatal("expected the invalid edit to surface an error")
	}

	// the original record must survive the failed edit untouched
	entries, err := store.Entries("")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after rejected edit, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Link == "https://a/alpha" && e.Title != "Alpha" {
			t.Errorf("original entry modified: %q", e.Title)
		}
	}
}

func TestPickerEditLinkMovesEntry(t *testing.T) {
	p, store := pickerFixture(t)

	p.Update(key("e"))
	p.editInputs[editLink].SetValue("https://a/alpha-moved")
	p.Update(key("enter"))

	if p.err != nil {
		t.Fatalf("unexpected picker error: %v", p.err)
	}

	entries, err := store.Entries("")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after link edit, got %d", len(entries))
	}

	var links []string
	for _, e := range entries {
		links = append(links, e.Link)
	}
	for _, l := range links {
		if l == "https://a/alpha" {
			t.Errorf("old link still present: %v", links)
		}
	}
}

func TestPickerSortToggleReverses(t *testing.T) {
	p, _ := pickerFixture(t)

	p.Update(key("s"))
	if p.visible[0].Title != "Beta" {
		t.Errorf("expected reversed order, got %q first", p.visible[0].Title)
	}

	p.Update(key("s"))
	if p.visible[0].Title != "Alpha" {
		t.Errorf("expected original order, got %q first", p.visible[0].Title)
	}
}
