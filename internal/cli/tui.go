package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plotspec/plotspec/pkg/examples"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ExampleListModel - Interactive example selection
// =============================================================================

// ExampleListModel is the bubbletea model for interactive example selection.
type ExampleListModel struct {
	Examples []examples.Example
	Cursor   int
	Selected *examples.Example
}

// NewExampleListModel creates a new example list model.
func NewExampleListModel(exs []examples.Example) ExampleListModel {
	return ExampleListModel{Examples: exs}
}

func (m ExampleListModel) Init() tea.Cmd {
	return nil
}

func (m ExampleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Examples)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Examples[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ExampleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Example"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, ex := range m.Examples {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-14s  %s", cursor, ex.Name, listDimStyle.Render(ex.Description))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Examples))))

	return b.String()
}
