// Package spiders holds the registry of supported manga sites. A spider is
// pure data: a site identity plus the theme that knows how to read its pages.
package spiders

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/xMohnad/SManga/internal/scrape"
)

type Spider struct {
	Name     string
	Language string
	BaseURL  string
	Theme    *scrape.Theme
}

func (s Spider) Host() string {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

var registry = []Spider{
	{Name: "3asq", Language: "ar", BaseURL: "https://3asq.org/", Theme: scrape.Madara},
	{Name: "aresmanga", Language: "ar", BaseURL: "https://fl-ares.com/", Theme: scrape.MangaThemesia},
	{Name: "azora", Language: "ar", BaseURL: "https://azoramoon.com/", Theme: scrape.Madara},
	{Name: "mangalek", Language: "ar", BaseURL: "https://lekmanga.net/", Theme: scrape.Madara},
	{Name: "mangaswat", Language: "ar", BaseURL: "https://swatscans.com/", Theme: scrape.MangaThemesia},
	{Name: "teamx", Language: "ar", BaseURL: "https://teamoney.site/", Theme: scrape.TeamX},
}

// List returns all registered spiders sorted by name.
func List() []Spider {
	out := make([]Spider, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get looks a spider up by name, case-insensitively.
func Get(name string) (Spider, error) {
	for _, s := range registry {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return Spider{}, fmt.Errorf("unknown spider %q", name)
}

// FindByURL matches a chapter link against the registered site hosts, so the
// user does not have to name the spider when the link already identifies it.
func FindByURL(link string) (Spider, error) {
	u, err := url.Parse(link)
	if err != nil || u.Hostname() == "" {
		return Spider{}, fmt.Errorf("invalid link %q", link)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	for _, s := range registry {
		if strings.EqualFold(s.Host(), host) {
			return s, nil
		}
	}

	return Spider{}, fmt.Errorf("no spider registered for host %q", host)
}

// Names returns the registered spider names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for _, s := range registry {
		out = append(out, s.Name)
	}
	sort.Strings(out)
	return out
}
