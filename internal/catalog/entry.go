// Package catalog implements the local "recent chapters" catalog: a JSON
// document mapping spider names to the manga previously scraped with them,
// so a later crawl can resume from the last saved chapter without
// re-discovering the series.
package catalog

import "strings"

// Chapter is one saved chapter reference.
type Chapter struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Entry is one registered manga. Entries are keyed by (spider, link):
// re-adding the same link under the same spider replaces the entry.
type Entry struct {
	Spider   string    `json:"-"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	Cover    string    `json:"cover,omitempty"`
	File     string    `json:"file,omitempty"`
	Chapters []Chapter `json:"chapters"`
}

// LastChapter returns the most recently saved chapter, the resume point for
// a recent crawl. Zero value when no chapters are recorded.
func (e Entry) LastChapter() Chapter {
	if len(e.Chapters) == 0 {
		return Chapter{}
	}
	return e.Chapters[len(e.Chapters)-1]
}

// Catalog maps spider name to the entries registered under it.
type Catalog map[string][]Entry

func (c Catalog) find(spider, link string) int {
	for i, e := range c[spider] {
		if e.Link == link {
			return i
		}
	}
	return -1
}

func validateEntry(idx int, e Entry) error {
	if strings.TrimSpace(e.Title) == "" {
		return &FormatError{Index: idx, Field: "title"}
	}
	if strings.TrimSpace(e.Link) == "" {
		return &FormatError{Index: idx, Field: "link"}
	}
	return nil
}
