package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/moviefinder/internal/engine"
)

// Layout constants.
const (
	listWidthPercent = 40
	minPaneWidth     = 20
	// chromeHeight covers header, input, status, help and pane borders.
	chromeHeight = 8
	paneFrame    = 4
)

// View renders the screen (Bubble Tea interface).
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("🎬 MovieFinder"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderPanes())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderPanes() string {
	listStyle, detailStyle := PaneStyle, PaneStyle
	switch m.focus {
	case focusList:
		listStyle = FocusedPaneStyle
	case focusDetail:
		detailStyle = FocusedPaneStyle
	}

	listWidth, detailWidth, paneHeight := m.paneSizes()
	left := listStyle.Width(listWidth).Height(paneHeight).Render(m.renderList())
	right := detailStyle.Width(detailWidth).Height(paneHeight).Render(m.panel.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderList() string {
	state := m.engine.Snapshot()
	switch {
	case state.Phase == engine.PhaseSearching && m.list.ItemCount() == 0:
		return fmt.Sprintf("%s Searching for %q...", m.loading.Frame(), state.Query)
	case state.Phase == engine.PhaseIdle && m.list.ItemCount() == 0:
		return SubtleStyle.Render("Type a title and press enter.")
	case m.list.ItemCount() == 0:
		return SubtleStyle.Render("No titles to show.")
	}
	return m.list.ViewWindow()
}

func (m Model) renderStatus() string {
	if m.engine.Store.Phase() == engine.PhaseSearching {
		return InfoStyle.Render(m.loading.Frame() + " Searching...")
	}
	if m.status == "" {
		return ""
	}
	if m.statusIsError {
		return ErrorStyle.Render(m.status)
	}
	return SubtleStyle.Render(m.status)
}

// paneSizes returns the inner list width, detail width and pane height.
func (m Model) paneSizes() (int, int, int) {
	listWidth := max(m.width*listWidthPercent/100-paneFrame, minPaneWidth)
	detailWidth := max(m.width-listWidth-2*paneFrame, minPaneWidth)
	height := max(m.height-chromeHeight, 1)
	return listWidth, detailWidth, height
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.input.Width = max(width-len(m.input.Prompt)-1, minPaneWidth)

	listWidth, detailWidth, paneHeight := m.paneSizes()
	m.list.SetSize(listWidth, paneHeight)
	m.panel.SetSize(detailWidth, paneHeight)
}

// renderSummary draws one list row as "Title (Year)".
func renderSummary(item engine.MovieSummary, selected bool, width int) string {
	line := item.Title
	if item.Year != "" {
		line = fmt.Sprintf("%s (%s)", item.Title, item.Year)
	}
	line = truncate(line, width-2)
	if selected {
		return SelectedStyle.Render("> " + line)
	}
	return "  " + line
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
