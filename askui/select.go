package askui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentui/askuser/ask"
)

// handleSelectKey processes key events while the option list is shown.
func (m Model) handleSelectKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// No navigable rows means there is nothing to answer with.
	if len(m.rows) == 0 {
		return m.resolve(ask.Cancelled())
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftTab:
		m.cursor = (m.cursor + len(m.rows) - 1) % len(m.rows)
		return m, nil

	case tea.KeyDown, tea.KeyTab:
		m.cursor = (m.cursor + 1) % len(m.rows)
		return m, nil

	case tea.KeyEnter:
		if m.rows[m.cursor].kind == rowFreeform {
			return m.enterFreeform()
		}
		if m.req.AllowMultiple {
			return m.submitChecked()
		}
		return m.resolve(ask.Submitted(m.rows[m.cursor].option.Title))

	case tea.KeySpace:
		if !m.req.AllowMultiple {
			return m, nil
		}
		if m.rows[m.cursor].kind == rowFreeform {
			return m.enterFreeform()
		}
		m.toggle(m.rows[m.cursor].index)
		return m, nil

	case tea.KeyEsc, tea.KeyCtrlC:
		return m.resolve(ask.Cancelled())

	case tea.KeyRunes:
		if m.req.AllowMultiple && len(msg.Runes) == 1 {
			if r := msg.Runes[0]; r >= '1' && r <= '9' {
				m.toggleDigit(int(r - '1'))
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) toggle(idx int) {
	if m.checked[idx] {
		delete(m.checked, idx)
	} else {
		m.checked[idx] = true
	}
}

// toggleDigit toggles option idx and moves the cursor onto it. Digits
// past the option count do nothing.
func (m *Model) toggleDigit(idx int) {
	if idx >= len(m.req.Options) {
		return
	}
	m.toggle(idx)
	m.cursor = idx
}

// submitChecked resolves a multi-select submit: checked titles joined in
// ascending option order regardless of toggle order, falling back to the
// cursor row when nothing is checked.
func (m Model) submitChecked() (Model, tea.Cmd) {
	idxs := make([]int, 0, len(m.checked))
	for i := range m.checked {
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)

	titles := make([]string, 0, len(idxs))
	for _, i := range idxs {
		titles = append(titles, m.req.Options[i].Title)
	}
	if len(titles) == 0 {
		titles = append(titles, m.rows[m.cursor].option.Title)
	}

	answer := strings.Join(titles, ", ")
	if answer == "" {
		return m.resolve(ask.Cancelled())
	}
	return m.resolve(ask.Submitted(answer))
}

// enterFreeform swaps the option list for the text editor. The selection
// state survives the trip back unless the discard policy is set.
func (m Model) enterFreeform() (Model, tea.Cmd) {
	if m.DiscardSelectionsOnFreeform {
		m.cursor = 0
		m.checked = make(map[int]bool)
	}
	m.mode = modeFreeform
	m.editor.Reset()
	return m, m.editor.Focus()
}
