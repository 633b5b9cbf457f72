package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/moviefinder/internal/engine"
	"github.com/rshade/moviefinder/internal/logging"
	"github.com/rshade/moviefinder/internal/tui/detail"
	listview "github.com/rshade/moviefinder/internal/tui/list"
)

// Default dimensions before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// searchPlaceholder is shown in the empty search bar.
const searchPlaceholder = "Search for movies..."

// searchCharLimit bounds the search input.
const searchCharLimit = 200

// focus is the pane receiving key input.
type focus int

const (
	focusSearch focus = iota
	focusList
	focusDetail
)

// Options configures a Model.
type Options struct {
	// InitialQuery is searched as soon as the program starts.
	InitialQuery string
	// AltScreen runs the program in the alternate screen buffer.
	AltScreen bool
}

// Model is the Bubble Tea model for the search screen.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	ctx    context.Context
	engine *engine.Engine

	keys    KeyMap
	help    help.Model
	input   textinput.Model
	list    *listview.VirtualListModel[engine.MovieSummary]
	panel   detail.Panel
	loading *LoadingState

	focus         focus
	status        string
	statusIsError bool
	detailLoading bool
	initialQuery  string

	width    int
	height   int
	quitting bool
}

// New returns a model driving eng.
func New(ctx context.Context, eng *engine.Engine, opts Options) Model {
	input := textinput.New()
	input.Placeholder = searchPlaceholder
	input.CharLimit = searchCharLimit
	input.Prompt = "🔍 "
	input.SetValue(opts.InitialQuery)
	input.Focus()

	m := Model{
		ctx:          ctx,
		engine:       eng,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		input:        input,
		list:         listview.NewVirtualListModel[engine.MovieSummary](nil, 0, 0, renderSummary),
		panel:        detail.NewPanel(0, 0),
		loading:      NewLoadingState(),
		focus:        focusSearch,
		initialQuery: opts.InitialQuery,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Init starts the cursor blink and, when configured, the initial search.
func (m Model) Init() tea.Cmd {
	if m.initialQuery == "" {
		return textinput.Blink
	}
	ticket := m.engine.Search.Begin(m.initialQuery)
	return tea.Batch(textinput.Blink, m.loading.Init(), searchCmd(m.ctx, m.engine.Search, ticket))
}

// Update handles messages (Bubble Tea interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case searchDoneMsg:
		return m.handleSearchDone(msg)
	case detailDoneMsg:
		return m.handleDetailDone(msg)
	case detail.PagerClosedMsg:
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("Pager failed: %v", msg.Err), true)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.isLoading() {
			return m, nil
		}
		cmd := m.loading.Update(msg)
		m.panel.SetSpinner(m.loading.Frame())
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusList:
		return m.handleListKey(msg)
	default:
		return m.handleDetailKey(msg)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitSearch(m.input.Value())
	case key.Matches(msg, m.keys.NextPane), key.Matches(msg, m.keys.Dismiss):
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.NextPane):
		if m.panel.State() != detail.StateEmpty {
			m.setFocus(focusDetail)
		} else {
			m.setFocus(focusSearch)
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Clear):
		m.clearSelection()
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		return m.retryDetail()
	case key.Matches(msg, m.keys.Pager):
		return m, m.openPager()
	}

	m.list.HandleKey(msg)
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		m.clearSelection()
		m.setFocus(focusList)
		return m, nil
	case key.Matches(msg, m.keys.NextPane):
		m.setFocus(focusSearch)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Search):
		m.setFocus(focusSearch)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Retry):
		return m.retryDetail()
	case key.Matches(msg, m.keys.Pager):
		return m, m.openPager()
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

// submitSearch issues a search ticket and starts the request.
func (m Model) submitSearch(query string) (tea.Model, tea.Cmd) {
	ticket := m.engine.Search.Begin(query)
	m.setStatus("", false)

	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("query", query).
		Uint64("seq", ticket.Seq).
		Msg("search submitted")

	return m, tea.Batch(m.loading.Init(), searchCmd(m.ctx, m.engine.Search, ticket))
}

func (m Model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	o := msg.outcome
	if !m.engine.Search.Apply(m.ctx, o) {
		return m, nil
	}

	state := m.engine.Snapshot()
	if o.OK() || m.engine.Store.Policy() == engine.ClearOnFailure {
		m.list.SetItems(state.Results)
	}

	switch {
	case o.Err != nil:
		m.setStatus(fmt.Sprintf("Search failed (%s): %v", o.Kind(), o.Err), true)
	case state.NoResults:
		m.setStatus(engine.NoResultsMessage(state.Query), true)
	default:
		m.setStatus(engine.SearchFooter(len(state.Results), state.Total), false)
		if m.focus == focusSearch {
			m.setFocus(focusList)
		}
	}
	return m, nil
}

// openSelected fetches the record under the list cursor.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	item := m.list.SelectedItem()
	if item == nil {
		return m, nil
	}
	return m.fetchDetail(item.ID)
}

func (m Model) retryDetail() (tea.Model, tea.Cmd) {
	if m.panel.State() != detail.StateError {
		return m, nil
	}
	return m.fetchDetail(m.panel.PendingID())
}

func (m Model) fetchDetail(id string) (tea.Model, tea.Cmd) {
	ticket := m.engine.Detail.Begin(id)
	m.detailLoading = true
	m.panel.SetLoading(id)
	return m, tea.Batch(m.loading.Init(), detailCmd(m.ctx, m.engine.Detail, ticket))
}

func (m Model) handleDetailDone(msg detailDoneMsg) (tea.Model, tea.Cmd) {
	o := msg.outcome
	if !m.engine.Detail.Apply(m.ctx, o) {
		return m, nil
	}
	m.detailLoading = false

	state := m.engine.Snapshot()
	if o.Err != nil {
		if state.Selected == nil {
			m.panel.Clear()
		}
		m.panel.SetError(o.Ticket.Input, o.Err)
		m.setStatus(fmt.Sprintf("Could not load details (%s)", o.Kind()), true)
		return m, nil
	}

	m.panel.SetDetail(state.Selected)
	m.setStatus("", false)
	return m, nil
}

// clearSelection dismisses the detail record and any fetch in flight.
func (m *Model) clearSelection() {
	m.engine.Detail.ClearSelection()
	m.detailLoading = false
	m.panel.Clear()
}

func (m Model) openPager() tea.Cmd {
	selected := m.engine.Snapshot().Selected
	if selected == nil {
		return nil
	}
	return detail.OpenPager(detail.PlainText(*selected))
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusSearch {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) setStatus(s string, isError bool) {
	m.status = s
	m.statusIsError = isError
}

func (m Model) isLoading() bool {
	return m.detailLoading || m.engine.Store.Phase() == engine.PhaseSearching
}

// State returns a snapshot of the view state.
func (m Model) State() engine.ViewState {
	return m.engine.Snapshot()
}

func searchCmd(ctx context.Context, c *engine.SearchController, t engine.Ticket) tea.Cmd {
	return func() tea.Msg {
		return searchDoneMsg{outcome: c.Run(ctx, t)}
	}
}

func detailCmd(ctx context.Context, c *engine.DetailController, t engine.Ticket) tea.Cmd {
	return func() tea.Msg {
		return detailDoneMsg{outcome: c.Run(ctx, t)}
	}
}
