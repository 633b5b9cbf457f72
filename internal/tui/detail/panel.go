package detail

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/moviefinder/internal/engine"
)

// State is what the panel is currently showing.
type State int

const (
	// StateEmpty means nothing is selected.
	StateEmpty State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateLoaded means a record is shown.
	StateLoaded
	// StateError means the last fetch failed.
	StateError
)

// Panel is the detail pane. The zero value is not usable; call NewPanel.
type Panel struct {
	viewport viewport.Model
	state    State
	detail   *engine.MovieDetail

	// pendingID is the id being loaded or the one that failed, for retry.
	pendingID string
	err       error
	spinner   string
}

// NewPanel returns an empty panel of the given size.
func NewPanel(width, height int) Panel {
	p := Panel{viewport: viewport.New(width, height)}
	p.refresh()
	return p
}

// State returns the current panel state.
func (p Panel) State() State { return p.state }

// Detail returns the record on screen, if any.
func (p Panel) Detail() *engine.MovieDetail { return p.detail }

// PendingID returns the id being loaded or the id that last failed.
func (p Panel) PendingID() string { return p.pendingID }

// Err returns the last fetch error.
func (p Panel) Err() error { return p.err }

// SetSize resizes the panel.
func (p *Panel) SetSize(width, height int) {
	p.viewport.Width = width
	p.viewport.Height = height
	p.refresh()
}

// SetLoading shows a loading line for id. Any record already shown stays
// visible underneath.
func (p *Panel) SetLoading(id string) {
	p.state = StateLoading
	p.pendingID = id
	p.err = nil
	p.refresh()
}

// SetSpinner sets the frame drawn next to the loading line.
func (p *Panel) SetSpinner(frame string) {
	p.spinner = frame
	if p.state == StateLoading {
		p.refresh()
	}
}

// SetDetail shows d, or clears the panel when d is nil.
func (p *Panel) SetDetail(d *engine.MovieDetail) {
	if d == nil {
		p.Clear()
		return
	}
	p.detail = d
	p.state = StateLoaded
	p.pendingID = ""
	p.err = nil
	p.refresh()
	p.viewport.GotoTop()
}

// SetError records a failed fetch for id. The record already shown, if any,
// stays visible.
func (p *Panel) SetError(id string, err error) {
	p.state = StateError
	p.pendingID = id
	p.err = err
	p.refresh()
}

// Clear empties the panel.
func (p *Panel) Clear() {
	p.state = StateEmpty
	p.detail = nil
	p.pendingID = ""
	p.err = nil
	p.refresh()
}

// Update scrolls the viewport.
func (p Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p Panel) View() string {
	return p.viewport.View()
}

func (p *Panel) refresh() {
	p.viewport.SetContent(p.content())
}

func (p *Panel) content() string {
	var body string
	if p.detail != nil {
		body = Render(*p.detail, p.viewport.Width)
	}

	switch p.state {
	case StateLoading:
		line := subtleStyle.Render(fmt.Sprintf("%s Loading %s...", p.spinner, p.pendingID))
		if body == "" {
			return line
		}
		return line + "\n\n" + body
	case StateError:
		line := errorStyle.Render(fmt.Sprintf("Could not load %s: %v", p.pendingID, p.err)) +
			"\n" + subtleStyle.Render("press r to retry")
		if body == "" {
			return line
		}
		return line + "\n\n" + body
	case StateLoaded:
		return body
	default:
		return subtleStyle.Render("Select a title to see its details.")
	}
}
