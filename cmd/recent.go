package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xMohnad/SManga/internal/catalog"
	"github.com/xMohnad/SManga/internal/config"
	"github.com/xMohnad/SManga/internal/ui"
)

var flagRecentSpider string

func init() {
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the manga saved in the catalog and their last scraped chapter",
		Args:  cobra.NoArgs,
		RunE:  runRecent,
	}

	recentCmd.Flags().StringVarP(&flagRecentSpider, "spider", "s", "", "only show manga saved under this spider")

	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
	})
	if err != nil {
		return err
	}

	store := catalog.NewStore(cfg.Catalog)
	entries, err := store.Entries(flagRecentSpider)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No manga saved yet.")
		return nil
	}

	fmt.Printf("\nSaved manga (%d)\n\n", len(entries))
	fmt.Println(ui.RenderEntriesTable(entries))

	return nil
}
