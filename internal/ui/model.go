package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"peoplepick/internal/config"
	"peoplepick/internal/dataset"
	"peoplepick/internal/domain"
	"peoplepick/internal/eventbus"
	"peoplepick/internal/selector"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	dataset dataset.Dataset

	selector *selector.Model
	selected *domain.Person

	width         int
	height        int
	keys          KeyMap
	help          help.Model
	styles        *Styles
	statusMessage string
	statusSeq     uint64
	inPagerMode   bool

	pager   Pager
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, ds dataset.Dataset) *Model {
	m := &Model{
		bus:     bus,
		config:  cfg,
		dataset: ds,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  NewStyles(),
		pager:   NewOvPager(nil),
	}

	m.selector = selector.New(
		selector.WithDataset(ds),
		selector.WithDelay(cfg.Selector.Delay()),
		selector.WithPlaceholder(cfg.Selector.Placeholder),
		selector.WithMaxVisible(cfg.Selector.MaxVisible),
		selector.WithOnSelected(m.onSelected),
	)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewOvPager(p)
}

// SetPager replaces the pager used for help and details
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// Selector returns the embedded search widget
func (m *Model) Selector() *selector.Model {
	return m.selector
}

// Selected returns the last confirmed person, or nil
func (m *Model) Selected() *domain.Person {
	return m.selected
}

// onSelected receives the widget's selection reports
func (m *Model) onSelected(p *domain.Person) {
	if p == nil {
		if m.selected != nil {
			m.bus.Publish(eventbus.SelectionClearedEvent{})
		}
		m.selected = nil
		return
	}

	person := *p
	m.selected = &person
	m.bus.Publish(eventbus.PersonSelectedEvent{Person: person})
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("peoplepick"), m.selector.Init())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// account for the main padding
		m.selector.SetWidth(msg.Width - 4)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case DatasetReloadedMsg:
		m.selector.Update(selector.DatasetChangedMsg{Version: msg.Version})
		return m, m.setStatus(fmt.Sprintf("Reloaded %d people", msg.Count))

	case DatasetReloadFailedMsg:
		return m, m.setStatus(fmt.Sprintf("Reload failed: %v", msg.Err))

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return m, nil
	}

	return m, m.selector.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, m.quit()
	}

	if m.selector.Focused() {
		if key.Matches(msg, m.keys.Blur) {
			m.selector.Blur()
			return m, nil
		}
		return m, m.selector.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Focus):
		return m, m.selector.Focus()

	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		groups := helpKeys{app: m.keys, selector: m.selector.KeyMap()}.FullHelp()
		return m, m.showInPager(renderHelp(m.styles, groups))

	case key.Matches(msg, m.keys.Details):
		if m.selected == nil {
			return m, m.setStatus("Nothing selected")
		}
		return m, m.showInPager(renderDetails(m.styles, *m.selected))
	}

	return m, nil
}

// quit tears the widget down before the program exits
func (m *Model) quit() tea.Cmd {
	m.selector.Close()
	return tea.Quit
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusMessage = text
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
