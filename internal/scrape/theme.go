package scrape

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Theme describes how a family of manga reading sites lays out its pages.
// Spiders bind a theme to a base URL; all extraction logic here is generic
// over the theme's selectors.
type Theme struct {
	Name string

	TitleSelector string
	HomeSelector  string
	NextSelector  string
	ImageSelector string

	NameSelector        string
	CoverSelector       string
	DescriptionSelector string
	GenreSelector       string
	AuthorSelector      string
	ArtistSelector      string

	// ScriptReader sites embed chapter images and the next-page URL in a
	// ts_reader script block instead of the DOM.
	ScriptReader bool
}

// Madara covers WordPress Madara sites (3asq, lekmanga, azoramoon, ...).
var Madara = &Theme{
	Name: "madara",

	TitleSelector: ".c-breadcrumb .active",
	HomeSelector:  "#chapter-heading > a.back, ol.breadcrumb li:nth-child(3) > a",
	NextSelector:  ".select-pagination .nav-next a:not(.back)",
	ImageSelector: "div.page-break img, li.blocks-gallery-item img, .reading-content .text-left img",

	NameSelector:        "div.post-title h3, div.post-title h1, #manga-title > h1",
	CoverSelector:       "div.summary_image img",
	DescriptionSelector: "div.description-summary div.summary__content, div.summary_content div.manga-excerpt, div.manga-summary",
	GenreSelector:       "div.genres-content a",
	AuthorSelector:      "div.author-content > a",
	ArtistSelector:      "div.artist-content > a",
}

// MangaThemesia covers ts_reader based sites (fl-ares, swatscans, ...).
var MangaThemesia = &Theme{
	Name: "mangathemesia",

	TitleSelector: "div.headpost > h1",
	HomeSelector:  "div.headpost > div > a",

	NameSelector:        "h1.entry-title, h1[itemprop=headline]",
	CoverSelector:       ".infomanga > div[itemprop=image] img, .thumb img",
	DescriptionSelector: ".desc, .entry-content[itemprop=description]",
	GenreSelector:       "div.gnr a, .mgen a, .seriestugenre a",

	ScriptReader: true,
}

// TeamX is a one-site theme; the site shares nothing with the two big
// WordPress families.
var TeamX = &Theme{
	Name: "teamx",

	TitleSelector: "#chapter-heading",
	HomeSelector:  "a.report-chapter",
	NextSelector:  "#next-chapter",
	ImageSelector: "div.page-break img",

	NameSelector:  "div.author-info-title h6",
	CoverSelector: "img.shadow-sm",
}

func (t *Theme) Title(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(t.TitleSelector).First().Text())
}

func (t *Theme) HomeURL(doc *goquery.Document, base string) string {
	href, _ := doc.Find(t.HomeSelector).First().Attr("href")
	return resolveURL(base, strings.TrimSpace(href))
}

func (t *Theme) NextURL(doc *goquery.Document, base string) string {
	if t.ScriptReader {
		return readerState(doc).NextURL
	}

	href, _ := doc.Find(t.NextSelector).First().Attr("href")
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	return resolveURL(base, href)
}

func (t *Theme) Images(doc *goquery.Document, base string) []string {
	if t.ScriptReader {
		state := readerState(doc)
		if len(state.Sources) > 0 {
			return state.Sources[0].Images
		}
		return nil
	}

	var out []string
	doc.Find(t.ImageSelector).Each(func(_ int, img *goquery.Selection) {
		if u := imageFromElement(img); u != "" {
			out = append(out, resolveURL(base, u))
		}
	})

	return out
}

// Details extracts the manga metadata from the series home page.
func (t *Theme) Details(doc *goquery.Document, home, source string) Details {
	d := Details{
		Source: source,
		Link:   home,
	}

	d.MangaName = strings.TrimSpace(doc.Find(t.NameSelector).First().Text())
	if d.MangaName == "" {
		d.MangaName = "UnknownManga"
	}

	d.Cover = resolveURL(home, imageFromElement(doc.Find(t.CoverSelector).First()))
	d.Description = strings.TrimSpace(doc.Find(t.DescriptionSelector).First().Text())

	doc.Find(t.GenreSelector).Each(func(_ int, g *goquery.Selection) {
		if s := strings.TrimSpace(g.Text()); s != "" {
			d.Genre = append(d.Genre, s)
		}
	})

	if t.AuthorSelector != "" {
		d.Author = strings.TrimSpace(doc.Find(t.AuthorSelector).First().Text())
	}
	if t.ArtistSelector != "" {
		d.Artist = strings.TrimSpace(doc.Find(t.ArtistSelector).First().Text())
	}

	return d
}

// tsReaderState is the JSON blob ts_reader sites feed their reader script.
type tsReaderState struct {
	NextURL string `json:"nextUrl"`
	Sources []struct {
		Images []string `json:"images"`
	} `json:"sources"`
}

func readerState(doc *goquery.Document) tsReaderState {
	var state tsReaderState

	doc.Find("script").EachWithBreak(func(_ int, sc *goquery.Selection) bool {
		text := sc.Text()
		idx := strings.Index(text, "ts_reader.run(")
		if idx < 0 {
			return true
		}

		payload := text[idx+len("ts_reader.run("):]
		end := strings.LastIndex(payload, ");")
		if end < 0 {
			return true
		}

		if err := json.Unmarshal([]byte(payload[:end]), &state); err != nil {
			state = tsReaderState{}
			return true
		}
		return false
	})

	return state
}

// imageFromElement checks the attributes lazy-loading sites hide the real
// image URL behind, in order of reliability.
func imageFromElement(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}

	for _, attr := range []string{"data-lazy-src", "data-src", "srcset", "data-cfsrc", "src"} {
		v, ok := sel.Attr(attr)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			continue
		}
		if attr == "srcset" {
			return strings.Fields(v)[0]
		}
		return v
	}

	return ""
}

func resolveURL(base, href string) string {
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(base)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}
