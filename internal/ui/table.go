package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/xMohnad/SManga/internal/catalog"
)

// RenderEntriesTable formats catalog entries as a static table for the
// recent command's plain (non-interactive) output.
func RenderEntriesTable(entries []catalog.Entry) string {
	columns := []table.Column{
		{Title: "Spider", Width: 12},
		{Title: "Title", Width: 40},
		{Title: "Last Chapter", Width: 28},
		{Title: "Chapters", Width: 8},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.Spider,
			Truncate(e.Title, 38),
			Truncate(e.LastChapter().Label, 26),
			fmt.Sprintf("%d", len(e.Chapters)),
		})
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

	return t.View()
}

func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 3 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
