// Package selector implements a searchable people picker for Bubble Tea
// programs.
//
// Typing updates the input immediately, while the query used for filtering
// (the applied query) only follows after a quiet period. The dropdown of
// matches opens on focus or typing and closes when a suggestion is picked.
// Picking a suggestion leaves the applied query alone, so re-focusing the
// input shows the matches of the last committed query, not the picked name.
package selector

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"peoplepick/internal/dataset"
	"peoplepick/internal/debounce"
	"peoplepick/internal/domain"
	"peoplepick/internal/search"
)

// DefaultPlaceholder is shown while the input is empty
const DefaultPlaceholder = "Enter a part of the name"

// SelectFunc receives the confirmed person, or nil when typing has
// invalidated the previous confirmation
type SelectFunc func(person *domain.Person)

// DatasetChangedMsg tells the selector its dataset published a new version
type DatasetChangedMsg struct {
	Version uint64
}

// Option configures a Model
type Option func(*Model)

// WithOnSelected sets the selection callback
func WithOnSelected(fn SelectFunc) Option {
	return func(m *Model) {
		if fn != nil {
			m.onSelected = fn
		}
	}
}

// WithDelay sets the debounce quiet period
func WithDelay(d time.Duration) Option {
	return func(m *Model) {
		m.delay = d
	}
}

// WithDataset sets the people the selector searches
func WithDataset(ds dataset.Dataset) Option {
	return func(m *Model) {
		if ds != nil {
			m.dataset = ds
		}
	}
}

// WithPlaceholder sets the input placeholder
func WithPlaceholder(s string) Option {
	return func(m *Model) {
		m.input.Placeholder = s
	}
}

// WithMaxVisible limits how many suggestions are drawn at once. Zero draws
// them all.
func WithMaxVisible(n int) Option {
	return func(m *Model) {
		if n >= 0 {
			m.maxVisible = n
		}
	}
}

// WithKeyMap replaces the list navigation bindings
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.keys = km
	}
}

// WithStyles replaces the default styles
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// Model is the selector state. It is not safe for concurrent use; drive it
// from a single Bubble Tea update loop.
type Model struct {
	input     textinput.Model
	dataset   dataset.Dataset
	debouncer *debounce.Debouncer
	memo      search.Memo

	appliedQuery string
	listVisible  bool
	cursor       int
	offset       int

	onSelected SelectFunc
	delay      time.Duration
	maxVisible int
	width      int
	keys       KeyMap
	styles     Styles
	closed     bool
}

// New creates a selector. The list starts hidden and the applied query
// empty.
func New(opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = DefaultPlaceholder
	ti.Prompt = "> "

	m := &Model{
		input:      ti,
		dataset:    dataset.NewStatic(nil),
		onSelected: func(*domain.Person) {},
		delay:      debounce.DefaultDelay,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.debouncer = debounce.New(m.delay)
	return m
}

// Init returns no command; the input blinks only once focused
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles a message. After Close it does nothing.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.closed {
		return nil
	}

	switch msg := msg.(type) {
	case debounce.CommitMsg:
		if !m.debouncer.Owns(msg) {
			return nil
		}
		if value, ok := m.debouncer.Accept(msg); ok {
			m.appliedQuery = value
			m.clampCursor()
			log.Printf("Applied query %q", value)
		}
		return nil

	case DatasetChangedMsg:
		m.clampCursor()
		return nil

	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return nil

	case tea.KeyMsg:
		if !m.input.Focused() {
			return nil
		}
		if m.listVisible {
			switch {
			case key.Matches(msg, m.keys.Up):
				m.moveCursor(-1)
				return nil
			case key.Matches(msg, m.keys.Down):
				m.moveCursor(1)
				return nil
			case key.Matches(msg, m.keys.Select):
				m.Select(m.cursor)
				return nil
			}
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return cmd
		}
		return tea.Batch(cmd, m.queryChanged(m.input.Value()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// queryChanged runs on every edit of the input text
func (m *Model) queryChanged(value string) tea.Cmd {
	cmd := m.debouncer.Schedule(value)
	m.listVisible = true
	m.cursor = 0
	m.offset = 0
	m.onSelected(nil)
	return cmd
}

// Focus focuses the input and opens the list, whatever the input holds
func (m *Model) Focus() tea.Cmd {
	if m.closed {
		return nil
	}
	m.listVisible = true
	m.clampCursor()
	return m.input.Focus()
}

// Blur removes focus from the input. The list keeps its visibility.
func (m *Model) Blur() {
	if m.closed {
		return
	}
	m.input.Blur()
}

// Select picks the i-th current suggestion. It reports false when i is out
// of range.
func (m *Model) Select(i int) bool {
	if m.closed {
		return false
	}

	suggestions := m.Suggestions()
	if i < 0 || i >= len(suggestions) {
		return false
	}

	person := suggestions[i]
	m.input.SetValue(person.Name)
	m.input.CursorEnd()
	m.listVisible = false
	log.Printf("Selected %s (%s)", person.Name, person.Slug)
	m.onSelected(&person)
	return true
}

// Close cancels the pending commit. The model ignores all input afterwards.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.debouncer.CancelAll()
	m.closed = true
}

// SetWidth sets the width available for the input and the list
func (m *Model) SetWidth(width int) {
	if m.closed {
		return
	}
	m.width = width
	if w := width - len(m.input.Prompt) - 1; w > 0 {
		m.input.Width = w
	}
}

// Suggestions returns the people matching the applied query. The result is
// memoized on the applied query and the dataset version and must not be
// modified.
func (m *Model) Suggestions() []domain.Person {
	return m.memo.Get(m.appliedQuery, m.dataset)
}

// Query returns the raw input text
func (m *Model) Query() string { return m.input.Value() }

// AppliedQuery returns the committed query used for filtering
func (m *Model) AppliedQuery() string { return m.appliedQuery }

// ListVisible reports whether the dropdown is shown
func (m *Model) ListVisible() bool { return m.listVisible }

// Focused reports whether the input has focus
func (m *Model) Focused() bool { return m.input.Focused() }

// Cursor returns the index of the highlighted suggestion
func (m *Model) Cursor() int { return m.cursor }

// Closed reports whether Close was called
func (m *Model) Closed() bool { return m.closed }

// Delay returns the debounce quiet period
func (m *Model) Delay() time.Duration { return m.debouncer.Delay() }

// Recomputations is how many times the suggestion list was derived
func (m *Model) Recomputations() int { return m.memo.Computations() }

// KeyMap returns the list navigation bindings
func (m *Model) KeyMap() KeyMap { return m.keys }

// PendingCommit returns the commit message waiting for its quiet period
func (m *Model) PendingCommit() (debounce.CommitMsg, bool) {
	return m.debouncer.Pending()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.Suggestions())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.scrollToCursor()
}

func (m *Model) clampCursor() {
	n := len(m.Suggestions())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.maxVisible <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.maxVisible {
		m.offset = m.cursor - m.maxVisible + 1
	}
	if limit := len(m.Suggestions()) - m.maxVisible; m.offset > limit {
		m.offset = limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
