package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultBufferSize is the number of extra rows rendered above and below the
// viewport.
const defaultBufferSize = 2

// halfViewportDivisor centers the cursor within the viewport.
const halfViewportDivisor = 2

// RenderFunc renders one item. selected is true for the row under the cursor.
type RenderFunc[T any] func(item T, selected bool, width int) string

// VirtualListModel is a scrolling list over items of type T.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	keys       KeyMap

	// selected is the cursor index (0-based).
	selected int

	// visibleFrom and visibleTo bound the rows inside the viewport; visibleTo
	// is exclusive.
	visibleFrom int
	visibleTo   int

	height     int
	width      int
	bufferSize int
}

// NewVirtualListModel creates a list of the given viewport size.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.HandleKey(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// HandleKey moves the cursor for navigation keys and reports whether msg was
// one of them.
func (m *VirtualListModel[T]) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.SetSelected(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.SetSelected(m.selected + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.SetSelected(m.selected - m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.SetSelected(m.selected + m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.SetSelected(0)
	case key.Matches(msg, m.keys.End):
		m.SetSelected(len(m.items) - 1)
	default:
		return false
	}
	return true
}

// KeyMap returns the navigation bindings, for help rendering.
func (m *VirtualListModel[T]) KeyMap() KeyMap {
	return m.keys
}

func (m *VirtualListModel[T]) pageSize() int {
	if m.height < 1 {
		return 1
	}
	return m.height
}

// SetItems replaces the items and moves the cursor to the first row.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.updateVisibleRange()
}

// Items returns the current items.
func (m *VirtualListModel[T]) Items() []T {
	return m.items
}

// SetSize changes the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateVisibleRange()
}

// updateVisibleRange keeps the cursor inside the viewport, centered where
// possible.
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 || m.height <= 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	half := m.height / halfViewportDivisor
	from := m.selected - half
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = to - m.height
		if from < 0 {
			from = 0
		}
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the rows in the viewport plus the buffer.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	from := m.visibleFrom - m.bufferSize
	if from < 0 {
		from = 0
	}
	to := m.visibleTo + m.bufferSize
	if to > len(m.items) {
		to = len(m.items)
	}

	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.selected, m.width))
	}
	return strings.Join(lines, "\n")
}

// ViewWindow renders exactly the rows inside the viewport. Layouts with a
// fixed height use it instead of View.
func (m *VirtualListModel[T]) ViewWindow() string {
	if m.visibleTo <= m.visibleFrom {
		return ""
	}
	lines := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		lines = append(lines, m.renderFunc(m.items[i], i == m.selected, m.width))
	}
	return strings.Join(lines, "\n")
}

// ItemCount returns the number of items.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the cursor index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor, clamped to the item range.
func (m *VirtualListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// VisibleFrom returns the first row inside the viewport.
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns one past the last row inside the viewport.
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// SelectedItem returns the item under the cursor, or nil for an empty list.
func (m *VirtualListModel[T]) SelectedItem() *T {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
