package scrape

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/xMohnad/SManga/internal/ui"
	"github.com/xMohnad/SManga/internal/util"
)

// Details is the manga-level metadata pulled from the series home page.
type Details struct {
	Source      string   `json:"source"`
	MangaName   string   `json:"manganame"`
	Link        string   `json:"link,omitempty"`
	Cover       string   `json:"cover,omitempty"`
	Description string   `json:"description,omitempty"`
	Genre       []string `json:"genre,omitempty"`
	Author      string   `json:"author,omitempty"`
	Artist      string   `json:"artist,omitempty"`
}

// Chapter is one scraped chapter page.
type Chapter struct {
	Title            string   `json:"title"`
	DocumentLocation string   `json:"document_location"`
	Images           []string `json:"images"`
}

// Document is the complete result of one crawl run.
type Document struct {
	Details  Details   `json:"details"`
	Chapters []Chapter `json:"chapters"`
}

// Scraper walks a site chapter by chapter following next-page links, using a
// theme to locate content in each page.
type Scraper struct {
	client  *http.Client
	log     *ui.Logger
	limiter *rate.Limiter

	// OnChapter is called after each chapter is extracted, for progress
	// reporting.
	OnChapter func(Chapter)
}

func New(client *http.Client, log *ui.Logger) *Scraper {
	return &Scraper{
		client:  client,
		log:     log,
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Run crawls chapters starting at startURL until the site offers no next
// page. Manga details are taken from the series home page when the theme can
// locate it. A fetch failure mid-walk ends the run with the chapters
// collected so far rather than discarding them; cancellation returns the
// partial document together with the context error.
func (s *Scraper) Run(ctx context.Context, startURL, source string, th *Theme) (*Document, error) {
	doc := &Document{
		Details:  Details{Source: source, MangaName: "UnknownManga"},
		Chapters: []Chapter{},
	}

	page, err := s.fetch(ctx, startURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", startURL, err)
	}

	if home := th.HomeURL(page, startURL); home != "" {
		if homePage, err := s.fetch(ctx, home); err != nil {
			s.log.Errorf("fetch manga home %s: %v\n", home, err)
		} else {
			doc.Details = th.Details(homePage, home, source)
		}
	}

	seen := map[string]bool{}
	cur := startURL

	for cur != "" && !seen[cur] {
		seen[cur] = true

		if page == nil {
			page, err = s.fetch(ctx, cur)
			if err != nil {
				if ctx.Err() != nil {
					return doc, ctx.Err()
				}
				s.log.Errorf("fetch %s: %v\n", cur, err)
				break
			}
		}

		ch := Chapter{
			Title:            th.Title(page),
			DocumentLocation: cur,
			Images:           th.Images(page, cur),
		}
		if ch.Title == "" {
			ch.Title = cur
		}

		doc.Chapters = append(doc.Chapters, ch)
		if s.OnChapter != nil {
			s.OnChapter(ch)
		}
		s.log.Debugf("scraped %q (%d images)\n", ch.Title, len(ch.Images))

		cur = th.NextURL(page, cur)
		page = nil
	}

	return doc, nil
}

func (s *Scraper) fetch(ctx context.Context, link string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}

	resp, err := util.DoWithRetry(s.client, req, 3, 500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
