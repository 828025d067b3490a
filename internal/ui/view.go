package ui

import (
	"fmt"
	"strings"
)

// View renders the application frame around the selector
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("peoplepick"))
	b.WriteString("\n")
	b.WriteString(m.selector.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Label.Render("Selected: "))
	if m.selected != nil {
		b.WriteString(m.styles.Selected.Render(m.selected.Name))
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf(" (%s)", m.selected.Slug)))
	} else {
		b.WriteString(m.styles.Dim.Render("none"))
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.statusMessage))
	}

	keys := helpKeys{app: m.keys, selector: m.selector.KeyMap(), focused: m.selector.Focused()}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(keys)))

	return m.styles.Main.Render(b.String())
}
