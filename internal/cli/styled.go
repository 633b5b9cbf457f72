package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/moviefinder/internal/engine"
	"github.com/rshade/moviefinder/internal/tui"
)

// renderStyledSearch writes a bordered, colored results table for terminals.
func renderStyledSearch(w io.Writer, report engine.SearchReport) error {
	if report.NoResults || len(report.Results) == 0 {
		_, err := fmt.Fprintln(w, tui.ErrorStyle.Render(engine.NoResultsMessage(report.Query)))
		return err
	}

	rows := make([][]string, 0, len(report.Results))
	for _, m := range report.Results {
		poster := m.PosterURL
		if poster == "" {
			poster = "-"
		}
		rows = append(rows, []string{m.ID, m.Title, m.Year, m.Type, poster})
	}

	headerStyle := tui.HeaderStyle.Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	idStyle := tui.SubtleStyle.Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tui.ColorBorder)).
		Headers("ID", "TITLE", "YEAR", "TYPE", "POSTER").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return idStyle
			default:
				return cellStyle
			}
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, tui.SubtleStyle.Render(engine.SearchFooter(len(report.Results), report.Total)))
	return err
}
