package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LayoutPickerModel - Interactive layout option selection
// =============================================================================

// LayoutPickerModel is the bubbletea model for picking a connections-layout
// option. Selected holds the chosen option string after the program exits,
// or "" when the user quit without choosing.
type LayoutPickerModel struct {
	Options  []string
	Cursor   int
	Selected string
}

// newLayoutPicker creates a picker over the given option strings.
func newLayoutPicker(options []string) LayoutPickerModel {
	return LayoutPickerModel{Options: options}
}

func (m LayoutPickerModel) Init() tea.Cmd {
	return nil
}

func (m LayoutPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Options)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Options[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m LayoutPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Connections Layout"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		line := cursor + opt
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Options))))

	return b.String()
}
