package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/xMohnad/SManga/internal/catalog"
	"github.com/xMohnad/SManga/internal/config"
	"github.com/xMohnad/SManga/internal/spiders"
)

func init() {
	addCmd := &cobra.Command{
		Use:   "add <json-file> [spider]",
		Short: "Register manga from a scraped JSON file in the catalog",
		Long: "Register manga from a scraped JSON file in the catalog. The spider is taken " +
			"from the argument, from the file itself, or asked for interactively.",
		Args: cobra.RangeArgs(1, 2),
		RunE: runAdd,
	}

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
	})
	if err != nil {
		return err
	}

	path := args[0]
	entries, hint, err := catalog.ParseEntriesFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file not found: %s", path)
		}
		return err
	}

	spider := hint
	if len(args) == 2 {
		spider = args[1]
	}

	if spider == "" {
		spider, err = askSpider()
		if err != nil {
			return err
		}
	} else if sp, err := spiders.Get(spider); err == nil {
		// canonical casing for registered spiders; names from sites the
		// registry does not know are stored as given
		spider = sp.Name
	}

	store := catalog.NewStore(cfg.Catalog)
	res, err := store.Merge(spider, entries)
	if err != nil {
		return err
	}

	fmt.Printf("Added %d manga under %q: %d new, %d updated\n",
		len(entries), spider, res.Inserted, res.Replaced)
	fmt.Printf("Catalog: %s\n", store.Path())

	return nil
}

func askSpider() (string, error) {
	prompt := promptui.Select{
		Label: "Spider for these manga",
		Items: spiders.Names(),
		Size:  len(spiders.Names()),
	}

	_, name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("no spider selected: %w", err)
	}

	return name, nil
}
