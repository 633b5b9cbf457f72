package tui

import "github.com/charmbracelet/lipgloss"

// Shared colors.
//
//nolint:gochecknoglobals // Shared lipgloss palette.
var (
	ColorAccent = lipgloss.Color("212")
	ColorSubtle = lipgloss.Color("241")
	ColorBorder = lipgloss.Color("238")
	ColorError  = lipgloss.Color("196")
	ColorInfo   = lipgloss.Color("39")
)

// Styles used across the app.
//
//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FocusedPaneStyle = PaneStyle.
				BorderForeground(ColorAccent)
)
