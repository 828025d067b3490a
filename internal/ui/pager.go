package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"peoplepick/internal/domain"
)

var errNoProgram = errors.New("program not set")

// Pager shows long text outside of the Bubble Tea screen
type Pager interface {
	Show(content string) error
}

// OvPager shows content in the ov pager, releasing the terminal while it runs
type OvPager struct {
	program *tea.Program
}

// NewOvPager creates a pager bound to program
func NewOvPager(program *tea.Program) *OvPager {
	return &OvPager{program: program}
}

// Show runs ov over content and returns once the user quits it
func (p *OvPager) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// renderHelp lists every binding for the pager
func renderHelp(styles *Styles, groups [][]key.Binding) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("peoplepick help"))
	b.WriteString("\n")

	sections := []string{"Search", "Application"}
	for i, group := range groups {
		if i < len(sections) {
			b.WriteString(styles.Section.Render(sections[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", styles.Key.Render(h.Key), styles.Desc.Render(h.Desc)))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("Typing filters people by name; matches refresh after a short pause."))
	b.WriteString("\n")
	return b.String()
}

// renderDetails describes one person for the pager
func renderDetails(styles *Styles, p domain.Person) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(p.Name))
	b.WriteString("\n")

	row := func(label, value string) {
		if value == "" {
			value = "unknown"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", styles.Label.Render(fmt.Sprintf("%-8s", label)), value))
	}
	year := func(y int) string {
		if y == 0 {
			return ""
		}
		return fmt.Sprintf("%d", y)
	}

	sex := "male"
	if p.IsFemale() {
		sex = "female"
	}

	row("Slug", p.Slug)
	row("Sex", sex)
	row("Born", year(p.Born))
	row("Died", year(p.Died))
	row("Father", p.FatherName)
	row("Mother", p.MotherName)
	return b.String()
}

// showInPager runs the pager from a command so the update loop stays free
func (m *Model) showInPager(content string) tea.Cmd {
	pager := m.pager
	program := m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}

		err := pager.Show(content)

		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return pagerClosedMsg{err: err}
	}
}
