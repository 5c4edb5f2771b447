package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/xMohnad/SManga/internal/catalog"
	"github.com/xMohnad/SManga/internal/config"
	"github.com/xMohnad/SManga/internal/feed"
	"github.com/xMohnad/SManga/internal/scrape"
	"github.com/xMohnad/SManga/internal/spiders"
	"github.com/xMohnad/SManga/internal/ui"
	"github.com/xMohnad/SManga/internal/util"
)

var (
	flagCrawlFile      string
	flagCrawlDest      string
	flagCrawlOverwrite bool
	flagCrawlRecent    bool
	flagCrawlSpider    string
	flagCrawlUserAgent string
)

func init() {
	crawlCmd := &cobra.Command{
		Use:   "crawl [link]",
		Short: "Scrape chapters starting from a chapter link and save them as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCrawl,
	}

	crawlCmd.Flags().StringVarP(&flagCrawlFile, "file", "f", "", "output file name (default: derived from the manga name)")
	crawlCmd.Flags().StringVarP(&flagCrawlDest, "dest", "d", "", "destination folder for the output file")
	crawlCmd.Flags().BoolVarP(&flagCrawlOverwrite, "overwrite", "o", false, "overwrite the output file instead of merging into it")
	crawlCmd.Flags().BoolVarP(&flagCrawlRecent, "recent", "r", false, "pick a saved manga and resume from its last chapter")
	crawlCmd.Flags().StringVarP(&flagCrawlSpider, "spider", "s", "", "spider name (default: derived from the link)")
	crawlCmd.Flags().StringVarP(&flagCrawlUserAgent, "User-Agent", "u", "", "override User-Agent")

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Dest:         flagCrawlDest,
		UserAgent:    flagCrawlUserAgent,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if usedPath != "" && usedPath != "(ignored config)" {
		logSvc.Debugf("config file: %s\n", usedPath)
	}

	store := catalog.NewStore(cfg.Catalog)

	link := ""
	if len(args) == 1 {
		link = args[0]
	}
	fileName := flagCrawlFile

	if flagCrawlRecent {
		entry, err := ui.RunPicker(store, flagCrawlSpider)
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}

		link = entry.LastChapter().URL
		if link == "" {
			link = entry.Link
		}
		if fileName == "" {
			fileName = entry.File
		}
		if flagCrawlSpider == "" {
			flagCrawlSpider = entry.Spider
		}
	}

	if link == "" {
		return fmt.Errorf("missing chapter link (pass one or use --recent)")
	}

	var sp spiders.Spider
	if flagCrawlSpider != "" {
		sp, err = spiders.Get(flagCrawlSpider)
	} else {
		sp, err = spiders.FindByURL(link)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Dest, 0755); err != nil {
		return fmt.Errorf("cannot create destination folder: %w", err)
	}
	util.CleanupStrayTemps(cfg.Dest)

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     30 * time.Second,
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		DebugLogger: logSvc,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pm := ui.NewProgressManager()
	handle := pm.Register(sp.Name)

	stats := &ui.Stats{}
	scraper := scrape.New(client, logSvc)
	scraper.OnChapter = func(ch scrape.Chapter) {
		handle.AddChapter(len(ch.Images))
		stats.TotalChapters.Add(1)
		stats.TotalImages.Add(int64(len(ch.Images)))
	}

	start := time.Now()
	doc, runErr := scraper.Run(ctx, link, sp.Name, sp.Theme)
	handle.MarkDone()
	pm.Close()

	// An interrupted run still persists what it walked; only a run with
	// nothing to save fails outright.
	if doc == nil || len(doc.Chapters) == 0 {
		if runErr != nil {
			return runErr
		}
		return fmt.Errorf("no chapters scraped from %s", link)
	}

	writer := &feed.Writer{
		Dest:      cfg.Dest,
		FileName:  fileName,
		Overwrite: flagCrawlOverwrite,
	}
	path, err := writer.Write(doc)
	if err != nil {
		return err
	}

	entry := feed.CatalogEntry(doc, filepath.Base(path))
	res, err := store.Merge(sp.Name, []catalog.Entry{entry})
	if err != nil {
		return err
	}

	size := int64(0)
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	fmt.Println()
	fmt.Println("Crawl Summary:")
	fmt.Printf("Manga:    %s\n", doc.Details.MangaName)
	fmt.Printf("Chapters: %d\n", stats.TotalChapters.Load())
	fmt.Printf("Images:   %d\n", stats.TotalImages.Load())
	fmt.Printf("Saved:    %s (%s)\n", path, util.Human(size))
	fmt.Printf("Catalog:  %d new, %d updated\n", res.Inserted, res.Replaced)
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))

	if runErr != nil {
		return fmt.Errorf("crawl interrupted, partial results saved: %w", runErr)
	}

	return nil
}
