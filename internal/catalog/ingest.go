package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// scrapedDocument mirrors the shape crawl writes to its output file: manga
// details plus the chapters walked in order.
type scrapedDocument struct {
	Details struct {
		Source    string `json:"source"`
		MangaName string `json:"manganame"`
		Link      string `json:"link"`
		Cover     string `json:"cover"`
	} `json:"details"`
	Chapters []struct {
		Title            string `json:"title"`
		DocumentLocation string `json:"document_location"`
	} `json:"chapters"`
}

type entryJSON struct {
	Spider   string    `json:"spider"`
	Title    string    `json:"title"`
	Link     string    `json:"link"`
	Cover    string    `json:"cover"`
	File     string    `json:"file"`
	Chapters []Chapter `json:"chapters"`
}

// ParseEntriesFile decodes a user-provided JSON file into catalog entries.
// Accepted shapes: a single manga object, an array of manga objects, or a
// full scraped-data document as written by crawl. The second return value is
// the spider name suggested by the file itself, when it carries one.
func ParseEntriesFile(path string) ([]Entry, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, "", fmt.Errorf("%s: file is empty", path)
	}

	if trimmed[0] == '[' {
		var raw []entryJSON
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, "", fmt.Errorf("%s: not valid JSON: %v", path, err)
		}
		return entriesFromJSON(raw)
	}

	if trimmed[0] != '{' {
		return nil, "", fmt.Errorf("%s: expected a JSON object or array", path)
	}

	// Distinguish a scraped document from a plain entry object by the
	// presence of a details section.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, "", fmt.Errorf("%s: not valid JSON: %v", path, err)
	}

	if _, ok := probe["details"]; ok {
		var doc scrapedDocument
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, "", fmt.Errorf("%s: not valid JSON: %v", path, err)
		}
		entry, err := entryFromDocument(doc, path)
		if err != nil {
			return nil, "", err
		}
		return []Entry{entry}, doc.Details.Source, nil
	}

	var raw entryJSON
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, "", fmt.Errorf("%s: not valid JSON: %v", path, err)
	}
	return entriesFromJSON([]entryJSON{raw})
}

func entriesFromJSON(raw []entryJSON) ([]Entry, string, error) {
	entries := make([]Entry, 0, len(raw))
	hint := ""

	for i, r := range raw {
		e := Entry{
			Spider:   r.Spider,
			Title:    r.Title,
			Link:     r.Link,
			Cover:    r.Cover,
			File:     r.File,
			Chapters: r.Chapters,
		}
		if e.Chapters == nil {
			e.Chapters = []Chapter{}
		}
		if err := validateEntry(i, e); err != nil {
			return nil, "", err
		}
		if hint == "" && r.Spider != "" {
			hint = r.Spider
		}
		entries = append(entries, e)
	}

	return entries, hint, nil
}

func entryFromDocument(doc scrapedDocument, path string) (Entry, error) {
	entry := Entry{
		Title: doc.Details.MangaName,
		Link:  doc.Details.Link,
		Cover: doc.Details.Cover,
		File:  filepath.Base(path),
	}

	entry.Chapters = make([]Chapter, 0, len(doc.Chapters))
	for _, ch := range doc.Chapters {
		entry.Chapters = append(entry.Chapters, Chapter{
			Label: ch.Title,
			URL:   ch.DocumentLocation,
		})
	}

	// Older scraped files carry no canonical manga link; the last chapter
	// location still identifies the series well enough to key the entry.
	if entry.Link == "" && len(entry.Chapters) > 0 {
		entry.Link = entry.Chapters[len(entry.Chapters)-1].URL
	}

	if err := validateEntry(0, entry); err != nil {
		return Entry{}, err
	}

	return entry, nil
}
