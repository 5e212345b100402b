package askui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentui/askuser/ask"
)

// scriptedSurface drives the real widget with a fixed key sequence, so
// the tool and the widget are exercised together the way a terminal
// session would.
type scriptedSurface struct {
	keys []tea.KeyMsg
}

func (s scriptedSurface) run(req ask.Request) (ask.Outcome, error) {
	m := New(req, Theme{})
	for _, k := range s.keys {
		m, _ = m.Update(k)
	}
	return m.Outcome(), nil
}

func (s scriptedSurface) Present(_ context.Context, req ask.Request) (ask.Outcome, error) {
	return s.run(req)
}

func (s scriptedSurface) PromptText(_ context.Context, req ask.Request) (ask.Outcome, error) {
	req.Options = nil
	req.AllowFreeform = true
	return s.run(req)
}

func runTool(t *testing.T, req ask.Request, keys ...tea.KeyMsg) ask.Result {
	t.Helper()
	return ask.New(scriptedSurface{keys: keys}).Ask(context.Background(), req)
}

func TestEndToEnd_SingleSelectSecondOption(t *testing.T) {
	req := ask.Request{
		Question:      "Pick one",
		Options:       []ask.Option{{Title: "a"}, {Title: "b"}},
		AllowFreeform: true,
	}
	res := runTool(t, req, key(tea.KeyDown), key(tea.KeyEnter))
	if res.Content != "User answered: b" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestEndToEnd_EscapeCancels(t *testing.T) {
	req := ask.Request{
		Question:      "Pick one",
		Options:       []ask.Option{{Title: "a"}, {Title: "b"}},
		AllowFreeform: true,
	}
	res := runTool(t, req, key(tea.KeyEsc))
	if res.Content != "User cancelled the question" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestEndToEnd_MultiSelectDigits(t *testing.T) {
	req := ask.Request{
		Question:      "Pick some",
		Options:       []ask.Option{{Title: "a"}, {Title: "b"}, {Title: "c"}},
		AllowMultiple: true,
	}
	res := runTool(t, req, runeKey('1'), runeKey('3'), key(tea.KeyEnter))
	if res.Content != "User answered: a, c" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestEndToEnd_MultiSelectNothingChecked(t *testing.T) {
	req := ask.Request{
		Question:      "Pick some",
		Options:       []ask.Option{{Title: "a"}, {Title: "b"}},
		AllowMultiple: true,
	}
	res := runTool(t, req, key(tea.KeyEnter))
	if res.Content != "User answered: a" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestEndToEnd_NoOptionsFreeText(t *testing.T) {
	req := ask.Request{Question: "Name it?", AllowFreeform: true}
	res := runTool(t, req,
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("custom answer")},
		key(tea.KeyCtrlD),
	)
	if res.Content != "User answered: custom answer" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestEndToEnd_EmptyFreeformSubmitCancels(t *testing.T) {
	req := ask.Request{
		Question:      "Pick one",
		Options:       []ask.Option{{Title: "a"}},
		AllowFreeform: true,
	}
	res := runTool(t, req, key(tea.KeyDown), key(tea.KeyEnter), key(tea.KeyCtrlD))
	if res.Content != "User cancelled the question" {
		t.Errorf("content = %q", res.Content)
	}
}

func TestUpdate_EmitsResolvedMsgOnce(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m, cmd := m.Update(key(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("resolving update should carry a command")
	}
	msg, ok := cmd().(ResolvedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ResolvedMsg", cmd())
	}
	if msg.Outcome.Text() != "a" {
		t.Errorf("outcome text = %q", msg.Outcome.Text())
	}

	// Further input is inert after resolution.
	m, cmd = m.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Error("second resolve must not emit again")
	}
	if m.Outcome().Text() != "a" {
		t.Errorf("outcome changed to %q", m.Outcome().Text())
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := New(testRequest(false, "a"), Theme{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 {
		t.Errorf("width = %d, want 100", m.width)
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 5, Height: 40})
	if m.width != minWidth {
		t.Errorf("width = %d, want floor %d", m.width, minWidth)
	}
}

func TestNew_Defaults(t *testing.T) {
	m := New(testRequest(false, "a"), Theme{})
	if m.MaxVisible != 10 {
		t.Errorf("MaxVisible = %d, want 10", m.MaxVisible)
	}
	if m.mode != modeSelect {
		t.Errorf("mode = %d, want modeSelect", m.mode)
	}
	if m.Resolved() {
		t.Error("a fresh widget must not be resolved")
	}
}

func TestRunner_QuitsOnResolvedMsg(t *testing.T) {
	r := runner{widget: New(testRequest(false, "a"), Theme{})}
	_, cmd := r.Update(ResolvedMsg{})
	if cmd == nil {
		t.Fatal("runner should quit on ResolvedMsg")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("cmd produced %T, want tea.QuitMsg", cmd())
	}
}

func TestRunner_ForwardsKeys(t *testing.T) {
	r := runner{widget: New(testRequest(false, "a", "b"), Theme{})}
	next, _ := r.Update(key(tea.KeyDown))
	if got := next.(runner).widget.cursor; got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}
}

func TestRunner_BlankViewAfterResolution(t *testing.T) {
	r := runner{widget: New(testRequest(false, "a"), Theme{})}
	next, _ := r.Update(key(tea.KeyEnter))
	if view := next.(runner).View(); view != "" {
		t.Errorf("view after resolution = %q, want empty", view)
	}
}
