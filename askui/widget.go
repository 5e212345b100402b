package askui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentui/askuser/ask"
)

type mode int

const (
	modeSelect mode = iota
	modeFreeform
)

// minWidth keeps the bordered box from collapsing on absurdly narrow
// terminals.
const minWidth = 20

// Model is the question widget. Embed it in a host model and forward
// messages to Update, or let TerminalSurface run it standalone. It
// resolves at most once by emitting ResolvedMsg through a command; it
// never quits the program it runs in, so hosts stay in control of their
// own lifecycle.
type Model struct {
	// MaxVisible bounds how many list rows are rendered at once.
	MaxVisible int
	// DiscardSelectionsOnFreeform resets the cursor and checked state
	// when the user opens the freeform editor, so coming back with esc
	// starts the selection over. The default keeps them.
	DiscardSelectionsOnFreeform bool

	req   ask.Request
	theme Theme
	rows  []row

	mode    mode
	cursor  int
	checked map[int]bool
	editor  textarea.Model

	width    int
	resolved bool
	outcome  ask.Outcome
}

// New builds the widget for one request. The request should already be
// normalized (blank-titled options dropped). A request with no options
// and freeform allowed starts directly in the editor.
func New(req ask.Request, theme Theme) Model {
	m := Model{
		MaxVisible: 10,
		req:        req,
		theme:      theme,
		rows:       buildRows(req),
		checked:    make(map[int]bool),
		width:      80,
	}
	m.editor = newEditor(theme, m.innerWidth())
	if len(req.Options) == 0 && req.AllowFreeform {
		m.mode = modeFreeform
		m.editor.Focus()
	}
	return m
}

// SetWidth resizes the widget and its editor.
func (m *Model) SetWidth(w int) {
	if w < minWidth {
		w = minWidth
	}
	m.width = w
	m.editor.SetWidth(m.innerWidth())
}

// innerWidth is the text width inside the border and padding.
func (m Model) innerWidth() int { return m.width - 4 }

// Resolved reports whether the widget has reached a terminal state.
func (m Model) Resolved() bool { return m.resolved }

// Outcome returns the terminal outcome. Meaningful only once Resolved
// reports true.
func (m Model) Outcome() ask.Outcome { return m.outcome }

func (m Model) Init() tea.Cmd {
	if m.mode == modeFreeform {
		return textarea.Blink
	}
	return nil
}

// Update implements the Bubble Tea contract with a value receiver so the
// widget composes into host models the way bubbles components do.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.resolved {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeFreeform {
			return m.handleFreeformKey(msg)
		}
		return m.handleSelectKey(msg)
	}

	if m.mode == modeFreeform {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resolve records the outcome and emits ResolvedMsg. Resolution happens
// at most once; later calls are ignored.
func (m Model) resolve(o ask.Outcome) (Model, tea.Cmd) {
	if m.resolved {
		return m, nil
	}
	m.resolved = true
	m.outcome = o
	return m, func() tea.Msg { return ResolvedMsg{Outcome: o} }
}
