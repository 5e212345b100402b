package askui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentui/askuser/ask"
)

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func testRequest(multi bool, titles ...string) ask.Request {
	opts := make([]ask.Option, len(titles))
	for i, title := range titles {
		opts[i] = ask.Option{Title: title}
	}
	return ask.Request{
		Question:      "Pick",
		Options:       opts,
		AllowMultiple: multi,
		AllowFreeform: true,
	}
}

func TestSelect_WraparoundUp(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	// Rows: a, b, Other.
	m = press(m, key(tea.KeyUp))
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2 (wrap to last)", m.cursor)
	}
}

func TestSelect_WraparoundDown(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m = press(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 (wrap to first)", m.cursor)
	}
}

func TestSelect_UpThenDownReturnsToStart(t *testing.T) {
	for start := 0; start < 3; start++ {
		m := New(testRequest(false, "a", "b"), Theme{})
		m.cursor = start
		m = press(m, key(tea.KeyUp), key(tea.KeyDown))
		if m.cursor != start {
			t.Errorf("from %d: up then down landed on %d", start, m.cursor)
		}
		m = press(m, key(tea.KeyDown), key(tea.KeyUp))
		if m.cursor != start {
			t.Errorf("from %d: down then up landed on %d", start, m.cursor)
		}
	}
}

func TestSelect_TabAndShiftTabMove(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m = press(m, key(tea.KeyTab))
	if m.cursor != 1 {
		t.Errorf("tab: cursor = %d, want 1", m.cursor)
	}
	m = press(m, key(tea.KeyShiftTab))
	if m.cursor != 0 {
		t.Errorf("shift+tab: cursor = %d, want 0", m.cursor)
	}
}

func TestSelect_EnterSubmitsCursorOption(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m = press(m, key(tea.KeyDown), key(tea.KeyEnter))
	if !m.Resolved() {
		t.Fatal("widget should be resolved")
	}
	if !m.Outcome().Answered() || m.Outcome().Text() != "b" {
		t.Errorf("outcome = %+v, want submitted %q", m.Outcome(), "b")
	}
}

func TestSelect_EscCancels(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m = press(m, key(tea.KeyDown), key(tea.KeyEsc))
	if !m.Resolved() || m.Outcome().Answered() {
		t.Errorf("esc should cancel, outcome = %+v", m.Outcome())
	}
}

func TestSelect_CtrlCCancels(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m = press(m, key(tea.KeyCtrlC))
	if !m.Resolved() || m.Outcome().Answered() {
		t.Errorf("ctrl+c should cancel, outcome = %+v", m.Outcome())
	}
}

func TestSelect_EnterOnFreeformRowOpensEditor(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m = press(m, key(tea.KeyUp), key(tea.KeyEnter)) // wrap onto the freeform row
	if m.Resolved() {
		t.Fatal("entering freeform must not resolve")
	}
	if m.mode != modeFreeform {
		t.Errorf("mode = %d, want modeFreeform", m.mode)
	}
}

func TestSelect_NoFreeformRowWhenDisabled(t *testing.T) {
	req := testRequest(false, "a", "b")
	req.AllowFreeform = false
	m := New(req, Theme{})
	if len(m.rows) != 2 {
		t.Errorf("rows = %d, want 2", len(m.rows))
	}
	m = press(m, key(tea.KeyUp))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (wrap over two rows)", m.cursor)
	}
}

func TestSelect_NoRowsAnyKeyCancels(t *testing.T) {
	m := New(ask.Request{Question: "q"}, Theme{}) // no options, no freeform
	if m.mode != modeSelect {
		t.Fatalf("mode = %d, want modeSelect", m.mode)
	}
	m = press(m, key(tea.KeyDown))
	if !m.Resolved() || m.Outcome().Answered() {
		t.Errorf("empty list should cancel on any key, outcome = %+v", m.Outcome())
	}
}

func TestSelect_SingleSelectIgnoresSpaceAndDigits(t *testing.T) {
	m := New(testRequest(false, "a", "b"), Theme{})
	m = press(m, key(tea.KeySpace), runeKey('2'))
	if m.Resolved() {
		t.Fatal("space and digits must not resolve a single-select")
	}
	if m.cursor != 0 || len(m.checked) != 0 {
		t.Errorf("cursor = %d, checked = %v, want untouched state", m.cursor, m.checked)
	}
}

func TestMultiSelect_SpaceToggles(t *testing.T) {
	m := New(testRequest(true, "a", "b"), Theme{})
	m = press(m, key(tea.KeySpace))
	if !m.checked[0] {
		t.Error("space should check the cursor row")
	}
	m = press(m, key(tea.KeySpace))
	if m.checked[0] {
		t.Error("space again should uncheck")
	}
}

func TestMultiSelect_DigitTogglesAndMovesCursor(t *testing.T) {
	m := New(testRequest(true, "a", "b", "c"), Theme{})
	m = press(m, runeKey('3'))
	if !m.checked[2] {
		t.Error("digit 3 should check option index 2")
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	m = press(m, runeKey('3'))
	if m.checked[2] {
		t.Error("digit 3 again should uncheck")
	}
}

func TestMultiSelect_DigitPastRangeIsNoOp(t *testing.T) {
	m := New(testRequest(true, "a", "b", "c"), Theme{})
	m = press(m, runeKey('9'))
	if m.Resolved() {
		t.Fatal("out-of-range digit must not resolve")
	}
	if len(m.checked) != 0 || m.cursor != 0 {
		t.Errorf("checked = %v, cursor = %d, want untouched state", m.checked, m.cursor)
	}
}

func TestMultiSelect_SubmitJoinsAscending(t *testing.T) {
	m := New(testRequest(true, "a", "b", "c"), Theme{})
	// Toggle out of order; the answer must come back in index order.
	m = press(m, runeKey('3'), runeKey('1'), key(tea.KeyEnter))
	if got := m.Outcome().Text(); got != "a, c" {
		t.Errorf("answer = %q, want %q", got, "a, c")
	}
}

func TestMultiSelect_EmptyCheckedFallsBackToCursor(t *testing.T) {
	m := New(testRequest(true, "a", "b"), Theme{})
	m = press(m, key(tea.KeyEnter))
	if got := m.Outcome().Text(); got != "a" {
		t.Errorf("answer = %q, want cursor row %q", got, "a")
	}
}

func TestMultiSelect_EnterOnFreeformRowOpensEditor(t *testing.T) {
	m := New(testRequest(true, "a", "b"), Theme{})
	m = press(m, key(tea.KeyUp), key(tea.KeyEnter))
	if m.Resolved() || m.mode != modeFreeform {
		t.Errorf("resolved = %v, mode = %d, want open editor", m.Resolved(), m.mode)
	}
}

func TestMultiSelect_SpaceOnFreeformRowOpensEditor(t *testing.T) {
	m := New(testRequest(true, "a", "b"), Theme{})
	m = press(m, key(tea.KeyUp), key(tea.KeySpace))
	if m.Resolved() || m.mode != modeFreeform {
		t.Errorf("resolved = %v, mode = %d, want open editor", m.Resolved(), m.mode)
	}
}

func TestMultiSelect_FreeformRowNeverChecked(t *testing.T) {
	m := New(testRequest(true, "a", "b"), Theme{})
	m = press(m, key(tea.KeyUp), key(tea.KeySpace)) // freeform row
	for idx := range m.checked {
		if idx >= 2 {
			t.Errorf("checked contains %d, outside option range", idx)
		}
	}
}
