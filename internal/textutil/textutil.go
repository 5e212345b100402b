// Package textutil provides ANSI-aware text measurement and shaping
// helpers shared by the interactive widget and the plain-text fallback.
// All widths are visual terminal cells; styling escape sequences never
// count toward them.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the visual width of s in terminal cells.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate hard-truncates s to at most width cells. Styling escape
// sequences are preserved. A width of zero or less yields the empty
// string.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// Wrap word-wraps s to the given width, breaking words longer than the
// width so no output line ever exceeds it.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Hardwrap(ansi.Wordwrap(s, width, ""), width, true)
}

// Indent prefixes every line of s with prefix.
func Indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// ClampLines truncates every line of block to at most width cells. It is
// the final defense applied to a full render before it reaches the host,
// which treats over-width lines as fatal.
func ClampLines(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = Truncate(line, width)
	}
	return strings.Join(lines, "\n")
}
