package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"peoplepick/internal/selector"
)

// KeyMap holds the application-level bindings
type KeyMap struct {
	Focus     key.Binding
	Blur      key.Binding
	Details   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab", "/"),
			key.WithHelp("tab", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "leave search"),
		),
		Details: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys adapts the bindings that apply in the current focus state to
// help.KeyMap
type helpKeys struct {
	app      KeyMap
	selector selector.KeyMap
	focused  bool
}

func (h helpKeys) ShortHelp() []key.Binding {
	if h.focused {
		return append(h.selector.ShortHelp(), h.app.Blur, h.app.ForceQuit)
	}
	return []key.Binding{h.app.Focus, h.app.Details, h.app.Help, h.app.Quit}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.selector.ShortHelp(),
		{h.app.Focus, h.app.Blur, h.app.Details, h.app.Help, h.app.Quit, h.app.ForceQuit},
	}
}
