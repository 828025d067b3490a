package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Element identifiers used by Surface. They name the same parts of the
// widget that View draws.
const (
	IDSearchInput     = "search-input"
	IDSuggestionsList = "suggestions-list"
	IDSuggestionItem  = "suggestion-item"
	IDNoSuggestions   = "no-suggestions-message"
)

// Role markers
const (
	RoleMenu  = "menu"
	RoleAlert = "alert"
)

// NoSuggestionsText is shown in place of the list when nothing matches
const NoSuggestionsText = "No matching suggestions"

// Element is one rendered part of the selector
type Element struct {
	ID          string
	Role        string
	Text        string
	Highlighted bool
}

// Surface is a plain description of what View draws, in drawing order
type Surface []Element

// Find returns the first element with the given id
func (s Surface) Find(id string) (Element, bool) {
	for _, e := range s {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// All returns every element with the given id
func (s Surface) All(id string) []Element {
	var out []Element
	for _, e := range s {
		if e.ID == id {
			out = append(out, e)
		}
	}
	return out
}

// Texts returns the text of every element with the given id
func (s Surface) Texts(id string) []string {
	var out []string
	for _, e := range s.All(id) {
		out = append(out, e.Text)
	}
	return out
}

// Surface describes the current rendering. Every suggestion is listed, not
// only the ones inside the visible window.
func (m *Model) Surface() Surface {
	surface := Surface{{ID: IDSearchInput, Text: m.input.Value()}}
	if !m.listVisible {
		return surface
	}

	suggestions := m.Suggestions()
	if len(suggestions) == 0 {
		return append(surface, Element{ID: IDNoSuggestions, Role: RoleAlert, Text: NoSuggestionsText})
	}

	surface = append(surface, Element{ID: IDSuggestionsList, Role: RoleMenu})
	for i, p := range suggestions {
		surface = append(surface, Element{
			ID:          IDSuggestionItem,
			Text:        p.Name,
			Highlighted: i == m.cursor,
		})
	}
	return surface
}

// View renders the input and, while open, the dropdown
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())

	if !m.listVisible {
		return b.String()
	}
	b.WriteString("\n")

	suggestions := m.Suggestions()
	if len(suggestions) == 0 {
		b.WriteString(m.styles.Notice.Render(NoSuggestionsText))
		return b.String()
	}

	// the dataset may have shrunk since offset was last clamped
	start, end := 0, len(suggestions)
	if m.maxVisible > 0 && len(suggestions) > m.maxVisible {
		end = min(m.offset+m.maxVisible, len(suggestions))
		start = max(0, end-m.maxVisible)
	}

	// room for the border and padding of the menu
	itemWidth := m.width - 4

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		p := suggestions[i]
		name := p.Name
		if itemWidth > 0 {
			name = ansi.Truncate(name, itemWidth, "…")
		}

		style := m.styles.Item
		if p.IsFemale() {
			style = m.styles.ItemFemale
		}
		if i == m.cursor {
			style = style.Inherit(m.styles.Highlighted)
		}
		lines = append(lines, style.Render(name))
	}
	if end < len(suggestions) {
		lines = append(lines, m.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(suggestions)-end)))
	}

	b.WriteString(m.styles.Menu.Render(strings.Join(lines, "\n")))
	return b.String()
}
