package selector

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the selector
type Styles struct {
	Menu        lipgloss.Style
	Item        lipgloss.Style
	ItemFemale  lipgloss.Style
	Highlighted lipgloss.Style
	Notice      lipgloss.Style
	Scroll      lipgloss.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	return Styles{
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // link blue
		ItemFemale:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // danger red
		Highlighted: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Background(lipgloss.Color("224")).
			Padding(0, 1).
			MarginTop(1),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
