package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used by the console view.
type Theme struct {
	Name string

	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Help    lipgloss.Style
	Accent  lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
}

// GetTheme returns the named theme, defaulting to dark.
func GetTheme(name string) Theme {
	if name == "light" {
		return lightTheme
	}
	return darkTheme
}

var darkTheme = Theme{
	Name:    "dark",
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9")),
	Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8F8F2")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
	Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true),
	Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")),
	Good:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B")),
	Warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F1FA8C")),
	Bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5555")),
}

var lightTheme = Theme{
	Name:    "light",
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
	Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1F2937")),
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")),
	Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4B5563")).Italic(true),
	Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0891B2")),
	Good:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#15803D")),
	Warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A16207")),
	Bad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C")),
}
