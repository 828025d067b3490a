package ui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the application frame
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Main     lipgloss.Style
	Section  lipgloss.Style
	Key      lipgloss.Style
	Desc     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")), // green
		Dim:      lipgloss.NewStyle().Faint(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:     lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:     lipgloss.NewStyle().Padding(1, 2),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
