package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peoplepick/internal/config"
	"peoplepick/internal/dataset"
	"peoplepick/internal/domain"
	"peoplepick/internal/eventbus"
)

type fakePager struct {
	shown []string
	err   error
}

func (p *fakePager) Show(content string) error {
	p.shown = append(p.shown, content)
	return p.err
}

var testPeople = []domain.Person{
	{Name: "Alice", Slug: "alice", Sex: domain.SexFemale, Born: 1900, MotherName: "Eve"},
	{Name: "Bob", Slug: "bob", Sex: domain.SexMale},
}

func newTestModel(t *testing.T) (*Model, eventbus.EventBus, *fakePager) {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	cfg := config.DefaultConfig()
	cfg.Selector.DelayMS = 60_000

	m := NewModel(bus, cfg, dataset.NewStatic(testPeople))
	pager := &fakePager{}
	m.SetPager(pager)
	return m, bus, pager
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func commitPending(t *testing.T, m *Model) {
	t.Helper()
	msg, ok := m.Selector().PendingCommit()
	require.True(t, ok)
	send(m, msg)
}

func TestTabTogglesFocus(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.False(t, m.Selector().Focused())

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.Selector().Focused())
	assert.True(t, m.Selector().ListVisible())

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.Selector().Focused())
}

func TestSearchAndSelectPublishesEvent(t *testing.T) {
	m, bus, _ := newTestModel(t)

	events := make(chan eventbus.DomainEvent, 4)
	bus.Subscribe(eventbus.EventPersonSelected, func(e eventbus.DomainEvent) { events <- e })
	bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) { events <- e })

	send(m, tea.KeyMsg{Type: tea.KeyTab}, runes("b"))
	commitPending(t, m)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "bob", m.Selected().Slug)
	assert.Contains(t, ansi.Strip(m.View()), "Selected: Bob (bob)")

	select {
	case e := <-events:
		sel, ok := e.(eventbus.PersonSelectedEvent)
		require.True(t, ok)
		assert.Equal(t, "Bob", sel.Person.Name)
	case <-time.After(time.Second):
		t.Fatal("selection was not published")
	}

	// typing again invalidates the selection
	send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Nil(t, m.Selected())
	assert.Contains(t, ansi.Strip(m.View()), "Selected: none")

	select {
	case e := <-events:
		assert.Equal(t, eventbus.EventSelectionCleared, e.Type())
	case <-time.After(time.Second):
		t.Fatal("clearing was not published")
	}
}

func TestQuitClosesSelector(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Selector().Closed())
}

func TestQWhileFocusedIsTyped(t *testing.T) {
	m, _, _ := newTestModel(t)

	send(m, tea.KeyMsg{Type: tea.KeyTab}, runes("q"))

	assert.Equal(t, "q", m.Selector().Query())
	assert.False(t, m.Selector().Closed())
}

func TestCtrlCQuitsWhileFocused(t *testing.T) {
	m, _, _ := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyTab}, runes("a"))
	pending, ok := m.Selector().PendingCommit()
	require.True(t, ok)

	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// the commit armed before quitting is dropped
	send(m, pending)
	assert.Empty(t, m.Selector().AppliedQuery())
}

func TestHelpOpensPager(t *testing.T) {
	m, _, pager := newTestModel(t)

	cmd := send(m, runes("?"))
	require.NotNil(t, cmd)
	msg := cmd()

	require.Len(t, pager.shown, 1)
	help := ansi.Strip(pager.shown[0])
	assert.Contains(t, help, "peoplepick help")
	assert.Contains(t, help, "next suggestion")
	assert.Contains(t, help, "quit")

	send(m, msg)
	assert.Empty(t, m.statusMessage)
}

func TestDetailsNeedSelection(t *testing.T) {
	m, _, pager := newTestModel(t)

	send(m, runes("i"))
	assert.Empty(t, pager.shown)
	assert.Contains(t, ansi.Strip(m.View()), "Nothing selected")

	send(m, clearStatusMsg{seq: m.statusSeq})
	assert.NotContains(t, ansi.Strip(m.View()), "Nothing selected")
}

func TestDetailsShowSelectedPerson(t *testing.T) {
	m, _, pager := newTestModel(t)
	send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, m.Selected())
	require.Equal(t, "alice", m.Selected().Slug)

	cmd := send(m, runes("i"))
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, pager.shown, 1)
	details := ansi.Strip(pager.shown[0])
	assert.Contains(t, details, "Alice")
	assert.Contains(t, details, "female")
	assert.Contains(t, details, "1900")
	assert.Contains(t, details, "Eve")
	assert.Contains(t, details, "unknown")
}

func TestPagerErrorShowsStatus(t *testing.T) {
	m, _, pager := newTestModel(t)
	pager.err = errors.New("no tty")

	cmd := send(m, runes("?"))
	send(m, cmd())

	assert.Contains(t, ansi.Strip(m.View()), "Pager failed: no tty")
}

func TestPagerModeBlanksView(t *testing.T) {
	m, _, _ := newTestModel(t)

	send(m, pauseRenderingMsg{})
	assert.Empty(t, m.View())

	send(m, resumeRenderingMsg{})
	assert.Contains(t, ansi.Strip(m.View()), "peoplepick")
}

func TestDatasetReloadRefreshesSuggestions(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)
	store := dataset.NewStore(testPeople)

	cfg := config.DefaultConfig()
	m := NewModel(bus, cfg, store)
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Len(t, m.Selector().Suggestions(), 2)

	version := store.Replace(testPeople[:1])
	send(m, DatasetReloadedMsg{Version: version, Count: 1})

	assert.Len(t, m.Selector().Suggestions(), 1)
	assert.Contains(t, ansi.Strip(m.View()), "Reloaded 1 people")
}

func TestWindowSizeIsForwarded(t *testing.T) {
	m, _, _ := newTestModel(t)

	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.Equal(t, 80, m.help.Width)
}

func TestOvPagerWithoutProgram(t *testing.T) {
	assert.ErrorIs(t, NewOvPager(nil).Show("text"), errNoProgram)
}

func TestStaleStatusTimeoutKeepsNewerStatus(t *testing.T) {
	m, _, pager := newTestModel(t)
	pager.err = errors.New("no tty")

	cmd := send(m, runes("?"))
	send(m, cmd())
	stale := clearStatusMsg{seq: m.statusSeq}

	send(m, DatasetReloadedMsg{Version: 1, Count: 2})
	send(m, stale)
	assert.Contains(t, ansi.Strip(m.View()), "Reloaded 2 people")

	send(m, clearStatusMsg{seq: m.statusSeq})
	assert.NotContains(t, ansi.Strip(m.View()), "Reloaded 2 people")
}

func TestDatasetReloadFailureShowsStatus(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := send(m, DatasetReloadFailedMsg{Err: errors.New("failed to parse people")})

	assert.NotNil(t, cmd)
	assert.Contains(t, ansi.Strip(m.View()), "Reload failed: failed to parse people")
}
