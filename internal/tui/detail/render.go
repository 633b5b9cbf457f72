package detail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/moviefinder/internal/engine"
)

// labelWidth aligns values after "Released:", the longest common label.
const labelWidth = 10

// Render formats d for a column of the given width. Plot text wraps; other
// values are kept on one line.
func Render(d engine.MovieDetail, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.Title))
	if d.Year != "" {
		b.WriteString(subtleStyle.Render(" (" + d.Year + ")"))
	}
	b.WriteString("\n\n")

	valueWidth := width - labelWidth
	for _, f := range engine.DetailFields(d) {
		if f.Label == "Title" {
			continue
		}
		label := labelStyle.Width(labelWidth).Render(f.Label + ":")
		style := valueStyle
		if f.Label == "Rating" {
			style = ratingStyle
		}
		if f.Label == "Plot" && valueWidth > 0 {
			style = style.Width(valueWidth)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, style.Render(f.Value)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// PlainText formats d without styling, for the pager.
func PlainText(d engine.MovieDetail) string {
	header := d.Title
	if d.Year != "" {
		header += " (" + d.Year + ")"
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("=", lipgloss.Width(header)) + "\n\n")

	for _, f := range engine.DetailFields(d) {
		if f.Label == "Plot" {
			continue
		}
		b.WriteString(f.Label + ": " + f.Value + "\n")
	}
	if d.Plot != "" {
		b.WriteString("\n" + d.Plot + "\n")
	}
	return b.String()
}
