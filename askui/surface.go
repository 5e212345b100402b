package askui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/agentui/askuser/ask"
)

// ProgramSurface presents questions inside an already-running Bubble Tea
// program. Present injects a RequestMsg and blocks the calling goroutine
// (a tool call, never the UI loop) until the host model replies on the
// response channel.
type ProgramSurface struct {
	program *tea.Program
}

// NewProgramSurface wraps a running program. The host model is expected
// to mount the widget when it receives RequestMsg and to reply on the
// message's Response channel when the widget emits ResolvedMsg.
func NewProgramSurface(p *tea.Program) *ProgramSurface {
	return &ProgramSurface{program: p}
}

func (s *ProgramSurface) Present(ctx context.Context, req ask.Request) (ask.Outcome, error) {
	response := make(chan ask.Outcome, 1)
	s.program.Send(RequestMsg{Req: req, Response: response})

	select {
	case <-ctx.Done():
		return ask.Cancelled(), ctx.Err()
	case o := <-response:
		return o, nil
	}
}

// PromptText asks the same question with the options stripped, which the
// widget renders as a bare editor.
func (s *ProgramSurface) PromptText(ctx context.Context, req ask.Request) (ask.Outcome, error) {
	req.Options = nil
	req.AllowFreeform = true
	return s.Present(ctx, req)
}

// TerminalSurface presents questions by taking over the terminal: each
// Present call runs its own Bubble Tea program around the widget, and
// PromptText runs a line editor. It is what the demo CLI and other
// non-TUI hosts use.
type TerminalSurface struct {
	Theme      Theme
	Width      int
	MaxVisible int
	// DiscardSelectionsOnFreeform is passed through to the widget.
	DiscardSelectionsOnFreeform bool
}

// NewTerminalSurface builds a surface for the current terminal, probing
// its width when one is attached.
func NewTerminalSurface() *TerminalSurface {
	s := &TerminalSurface{Theme: DefaultTheme(), Width: 80, MaxVisible: 10}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		s.Width = w
	}
	return s
}

func (s *TerminalSurface) widget(req ask.Request) Model {
	m := New(req, s.Theme)
	if s.MaxVisible > 0 {
		m.MaxVisible = s.MaxVisible
	}
	m.DiscardSelectionsOnFreeform = s.DiscardSelectionsOnFreeform
	m.SetWidth(s.Width)
	return m
}

func (s *TerminalSurface) Present(ctx context.Context, req ask.Request) (ask.Outcome, error) {
	p := tea.NewProgram(runner{widget: s.widget(req)}, tea.WithContext(ctx))
	out, err := p.Run()
	if ctx.Err() != nil {
		return ask.Cancelled(), ctx.Err()
	}
	if err != nil {
		return ask.Cancelled(), fmt.Errorf("running question program: %w", err)
	}

	r, ok := out.(runner)
	if !ok || !r.widget.Resolved() {
		return ask.Cancelled(), nil
	}
	return r.widget.Outcome(), nil
}

// PromptText reads a single line. Ctrl+C and EOF cancel, and so does a
// blank answer.
func (s *TerminalSurface) PromptText(ctx context.Context, req ask.Request) (ask.Outcome, error) {
	if ctx.Err() != nil {
		return ask.Cancelled(), ctx.Err()
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if req.Context != "" {
		fmt.Println(req.Context)
	}
	answer, err := line.Prompt(req.Question + " ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return ask.Cancelled(), nil
		}
		return ask.Cancelled(), fmt.Errorf("reading answer: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ask.Cancelled(), nil
	}
	return ask.Submitted(answer), nil
}

// runner hosts the widget in a dedicated program and quits once it
// resolves. Embedded hosts skip it and mount Model directly.
type runner struct {
	widget Model
}

func (r runner) Init() tea.Cmd { return r.widget.Init() }

func (r runner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(ResolvedMsg); ok {
		return r, tea.Quit
	}
	var cmd tea.Cmd
	r.widget, cmd = r.widget.Update(msg)
	return r, cmd
}

func (r runner) View() string {
	if r.widget.Resolved() {
		return ""
	}
	return r.widget.View()
}
