package askui

import (
	"fmt"
	"strings"

	"github.com/agentui/askuser/internal/textutil"
)

// View renders the full widget surface. The final pass clamps every line
// to the configured width. Downstream renderers treat over-width lines
// as fatal, so no code path may emit one, whatever the sub-widgets
// produced.
func (m Model) View() string {
	inner := m.innerWidth()

	var b strings.Builder
	b.WriteString(textutil.Truncate(m.theme.Question.Render(m.req.Question), inner))
	b.WriteString("\n")

	if m.req.Context != "" {
		b.WriteString(m.theme.Context.Render(textutil.Wrap(m.req.Context, inner)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.mode == modeFreeform {
		b.WriteString(m.editor.View())
	} else {
		b.WriteString(m.renderRows(inner))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Hint.Render(textutil.Truncate(m.helpLine(), inner)))

	content := textutil.ClampLines(b.String(), inner)
	box := m.theme.Border.Width(m.width - 2).Render(content)
	return textutil.ClampLines(box, m.width)
}

// renderRows renders the visible window of the list: up to MaxVisible
// rows centered on the cursor and clamped to the ends, with a position
// indicator when the window cuts the list.
func (m Model) renderRows(width int) string {
	visible := m.MaxVisible
	if visible <= 0 || visible > len(m.rows) {
		visible = len(m.rows)
	}
	start := m.cursor - visible/2
	if start > len(m.rows)-visible {
		start = len(m.rows) - visible
	}
	if start < 0 {
		start = 0
	}

	var lines []string
	for i := start; i < start+visible; i++ {
		lines = append(lines, m.renderRow(i, width))
	}
	if visible < len(m.rows) {
		lines = append(lines, m.theme.Indicator.Render(fmt.Sprintf("(%d/%d)", m.cursor+1, len(m.rows))))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders one list entry: cursor marker, then for multi-select
// option rows an ordinal and checkbox, then the title, with the
// description wrapped underneath. Segments are styled individually and
// the joined line truncated escape-aware.
func (m Model) renderRow(i, width int) string {
	r := m.rows[i]

	style := m.theme.Option
	marker := "  "
	if i == m.cursor {
		marker = "> "
		style = m.theme.Selected
	}

	line := style.Render(marker)
	if m.req.AllowMultiple && r.kind == rowOption {
		line += style.Render(fmt.Sprintf("%d. ", r.index+1))
		if m.checked[r.index] {
			line += m.theme.Checked.Render("[✓] ")
		} else {
			line += style.Render("[ ] ")
		}
	}
	line += style.Render(r.option.Title)

	out := textutil.Truncate(line, width)
	if r.option.Description != "" {
		out += "\n" + m.renderDesc(r.option.Description, width)
	}
	return out
}

// renderDesc wraps a description and indents it under its title line.
func (m Model) renderDesc(desc string, width int) string {
	const indent = "    "
	wrapped := textutil.Wrap(desc, width-len(indent))
	return m.theme.Desc.Render(textutil.Indent(wrapped, indent))
}

// helpLine derives the key hint from the current mode. Display-only.
func (m Model) helpLine() string {
	if m.mode == modeFreeform {
		if len(m.req.Options) == 0 {
			return "Ctrl+D to submit, Ctrl+C to cancel"
		}
		return "Ctrl+D to submit, Esc to go back, Ctrl+C to cancel"
	}
	if m.req.AllowMultiple {
		return "Use arrow keys to navigate, Space or 1-9 to toggle, Enter to submit, Esc to cancel"
	}
	return "Use arrow keys to navigate, Enter to select, Esc to cancel"
}
