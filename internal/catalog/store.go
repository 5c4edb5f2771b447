package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xMohnad/SManga/internal/util"
)

// Store owns the on-disk catalog document. All reads and writes go through
// it; nothing else touches the file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the persisted catalog. A missing or empty file yields an empty
// catalog; a file that exists but does not parse fails with ErrCorrupt.
func (s *Store) Load() (Catalog, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Catalog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return Catalog{}, nil
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", s.path, ErrCorrupt, err)
	}

	// The spider field is implied by the key the entry is stored under.
	for spider, entries := range cat {
		for i := range entries {
			entries[i].Spider = spider
		}
	}

	return cat, nil
}

// Save serializes the full catalog and writes it atomically, so a crash
// mid-write never leaves a half-written file.
func (s *Store) Save(cat Catalog) error {
	data, err := json.MarshalIndent(cat, "", "    ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if err := util.WriteFileAtomic(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("save catalog %s: %w", s.path, err)
	}

	return nil
}

// MergeResult reports what a merge did.
type MergeResult struct {
	Inserted int
	Replaced int
}

// Merge registers entries under spider, inserting new (spider, link) pairs
// and replacing existing ones. It is the sole mutation path: entries are
// validated and the full replacement catalog is built before anything is
// written, so a bad input never partially corrupts the file.
func (s *Store) Merge(spider string, entries []Entry) (MergeResult, error) {
	var res MergeResult

	if strings.TrimSpace(spider) == "" {
		return res, fmt.Errorf("spider name cannot be empty")
	}
	for i, e := range entries {
		if err := validateEntry(i, e); err != nil {
			return res, err
		}
	}

	cat, err := s.Load()
	if err != nil {
		return res, err
	}

	for _, e := range entries {
		e.Spider = spider
		if i := cat.find(spider, e.Link); i >= 0 {
			cat[spider][i] = e
			res.Replaced++
		} else {
			cat[spider] = append(cat[spider], e)
			res.Inserted++
		}
	}

	if err := s.Save(cat); err != nil {
		return MergeResult{}, err
	}

	return res, nil
}

// Remove deletes the entry keyed by (spider, link). Reports whether an entry
// was actually removed.
func (s *Store) Remove(spider, link string) (bool, error) {
	cat, err := s.Load()
	if err != nil {
		return false, err
	}

	i := cat.find(spider, link)
	if i < 0 {
		return false, nil
	}

	cat[spider] = append(cat[spider][:i], cat[spider][i+1:]...)
	if len(cat[spider]) == 0 {
		delete(cat, spider)
	}

	return true, s.Save(cat)
}

// Entries returns the current catalog contents, optionally filtered by
// spider, ordered by spider name then title. An empty or absent catalog is a
// valid empty result, not an error.
func (s *Store) Entries(spider string) ([]Entry, error) {
	cat, err := s.Load()
	if err != nil {
		return nil, err
	}

	out := []Entry{}
	for name, entries := range cat {
		if spider != "" && name != spider {
			continue
		}
		out = append(out, entries...)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Spider != out[j].Spider {
			return out[i].Spider < out[j].Spider
		}
		return out[i].Title < out[j].Title
	})

	return out, nil
}
