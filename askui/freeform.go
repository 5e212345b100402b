package askui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agentui/askuser/ask"
)

// newEditor creates and configures the freeform answer editor.
func newEditor(theme Theme, width int) textarea.Model {
	ti := textarea.New()
	ti.Placeholder = "Type your answer"
	ti.Prompt = theme.Selected.Render("> ")
	ti.CharLimit = 0 // no limit
	ti.SetWidth(width)
	ti.SetHeight(3)
	ti.ShowLineNumbers = false
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle() // no cursor line highlight
	return ti
}

// handleFreeformKey owns the three chords that leave the editor; every
// other key event belongs to the editor itself, so enter keeps inserting
// newlines.
func (m Model) handleFreeformKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// With no options there is no list to go back to.
		if len(m.req.Options) == 0 {
			return m.resolve(ask.Cancelled())
		}
		m.mode = modeSelect
		m.editor.Reset()
		m.editor.Blur()
		return m, nil

	case tea.KeyCtrlC:
		return m.resolve(ask.Cancelled())

	case tea.KeyCtrlD:
		answer := strings.TrimSpace(m.editor.Value())
		if answer == "" {
			return m.resolve(ask.Cancelled())
		}
		return m.resolve(ask.Submitted(answer))
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}
