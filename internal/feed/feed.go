// Package feed persists crawl results as JSON documents and bridges them
// into catalog entries.
package feed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xMohnad/SManga/internal/catalog"
	"github.com/xMohnad/SManga/internal/scrape"
	"github.com/xMohnad/SManga/internal/util"
)

// Writer saves a scraped document under Dest. Unless Overwrite is set, an
// existing file with the same name is merged into the result instead of being
// clobbered, so re-crawling a manga extends its chapter list.
type Writer struct {
	Dest      string
	FileName  string
	Overwrite bool
}

var invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// FileNameFor derives the output file name from the manga name.
func FileNameFor(mangaName string) string {
	name := strings.ReplaceAll(mangaName, " ", "-") + ".json"
	return strings.ToLower(invalidFileChars.ReplaceAllString(name, "_"))
}

// Write persists the document and returns the path it was written to.
func (w *Writer) Write(doc *scrape.Document) (string, error) {
	name := w.FileName
	if name == "" {
		name = FileNameFor(doc.Details.MangaName)
	}
	path := filepath.Join(w.Dest, name)

	out := scrape.Document{
		Details:  doc.Details,
		Chapters: doc.Chapters,
	}

	if !w.Overwrite {
		if prev := loadExisting(path); prev != nil {
			// Previously saved chapters first; on duplicate titles the
			// freshly scraped version wins.
			out.Chapters = append(prev.Chapters, doc.Chapters...)
			if out.Details.MangaName == "" || out.Details.MangaName == "UnknownManga" {
				out.Details = prev.Details
			}
		}
	}

	out.Chapters = cleanAndSortChapters(out.Chapters)

	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode feed: %w", err)
	}

	if err := util.WriteFileAtomic(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("save feed %s: %w", path, err)
	}

	return path, nil
}

func loadExisting(path string) *scrape.Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var doc scrape.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	return &doc
}

var chapterNumber = regexp.MustCompile(`\d+`)

// cleanAndSortChapters drops duplicate titles, keeping the most recently
// scraped version, and orders chapters by the first number in their title.
// Chapters without a number sort last.
func cleanAndSortChapters(chapters []scrape.Chapter) []scrape.Chapter {
	unique := make([]scrape.Chapter, 0, len(chapters))
	index := map[string]int{}

	for _, ch := range chapters {
		if ch.Title == "" {
			continue
		}
		if i, ok := index[ch.Title]; ok {
			unique[i] = ch
			continue
		}
		index[ch.Title] = len(unique)
		unique = append(unique, ch)
	}

	num := func(ch scrape.Chapter) int {
		m := chapterNumber.FindString(ch.Title)
		if m == "" {
			return int(^uint(0) >> 1)
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return int(^uint(0) >> 1)
		}
		return n
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return num(unique[i]) < num(unique[j])
	})

	return unique
}

// CatalogEntry converts a scraped document into the entry the catalog keeps
// for it. file is the feed file name the document was saved under.
func CatalogEntry(doc *scrape.Document, file string) catalog.Entry {
	e := catalog.Entry{
		Title:    doc.Details.MangaName,
		Link:     doc.Details.Link,
		Cover:    doc.Details.Cover,
		File:     file,
		Chapters: make([]catalog.Chapter, 0, len(doc.Chapters)),
	}

	for _, ch := range doc.Chapters {
		e.Chapters = append(e.Chapters, catalog.Chapter{
			Label: ch.Title,
			URL:   ch.DocumentLocation,
		})
	}

	if e.Link == "" && len(e.Chapters) > 0 {
		e.Link = e.Chapters[len(e.Chapters)-1].URL
	}

	return e
}
