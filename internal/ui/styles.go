package ui

import "github.com/charmbracelet/lipgloss"

var (
	colPrimary = lipgloss.Color("#FF6B9D")
	colMuted   = lipgloss.Color("#546E7A")
	colError   = lipgloss.Color("#F07178")

	titleStyle = lipgloss.NewStyle().
			Foreground(colPrimary).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colPrimary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colError).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colMuted).
			Italic(true).
			MarginTop(1)
)
