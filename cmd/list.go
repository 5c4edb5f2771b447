package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xMohnad/SManga/internal/spiders"
)

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported sites and their spiders",
		Args:  cobra.NoArgs,
		Run:   runList,
	}

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) {
	columns := []table.Column{
		{Title: "Spider", Width: 12},
		{Title: "Language", Width: 8},
		{Title: "Site", Width: 32},
		{Title: "Theme", Width: 16},
	}

	rows := []table.Row{}
	for _, s := range spiders.List() {
		rows = append(rows, table.Row{s.Name, s.Language, s.BaseURL, s.Theme.Name})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	fmt.Printf("\nSupported sites (%d)\n\n", len(rows))
	fmt.Println(t.View())
}
