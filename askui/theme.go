package askui

import "github.com/charmbracelet/lipgloss"

var (
	// Dark palette.
	colorPurple = lipgloss.Color("#A855F7")
	colorGreen  = lipgloss.Color("#22C55E")
	colorDim    = lipgloss.Color("#6B7280")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorWhite  = lipgloss.Color("#F9FAFB")

	// Light palette.
	colorPurpleDeep = lipgloss.Color("#7C3AED")
	colorGreenDeep  = lipgloss.Color("#15803D")
	colorGray       = lipgloss.Color("#4B5563")
	colorCyanDeep   = lipgloss.Color("#0E7490")
	colorInk        = lipgloss.Color("#111827")
)

// Theme carries every style the widget renders with. It is threaded
// through constructors as an immutable value, so the widget never reads
// ambient state and two widgets can render with different themes in the
// same process. The zero value renders completely unstyled.
type Theme struct {
	// Border draws the outer box around the whole widget.
	Border lipgloss.Style
	// Question styles the question line.
	Question lipgloss.Style
	// Context styles the optional context block under the question.
	Context lipgloss.Style
	// Option styles non-cursor rows.
	Option lipgloss.Style
	// Selected styles the cursor row.
	Selected lipgloss.Style
	// Checked styles the checkbox of a checked multi-select row.
	Checked lipgloss.Style
	// Desc styles wrapped option descriptions.
	Desc lipgloss.Style
	// Hint styles the key-help line at the bottom.
	Hint lipgloss.Style
	// Indicator styles the "(n/total)" position marker of a windowed list.
	Indicator lipgloss.Style
}

// DefaultTheme is the dark theme.
func DefaultTheme() Theme {
	return Theme{
		Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1),
		Question:  lipgloss.NewStyle().Foreground(colorWhite).Bold(true),
		Context:   lipgloss.NewStyle().Foreground(colorDim),
		Option:    lipgloss.NewStyle().Foreground(colorWhite),
		Selected:  lipgloss.NewStyle().Foreground(colorPurple).Bold(true),
		Checked:   lipgloss.NewStyle().Foreground(colorGreen),
		Desc:      lipgloss.NewStyle().Foreground(colorDim),
		Hint:      lipgloss.NewStyle().Foreground(colorDim),
		Indicator: lipgloss.NewStyle().Foreground(colorCyan),
	}
}

// LightTheme swaps the palette for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Border:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorGray).Padding(0, 1),
		Question:  lipgloss.NewStyle().Foreground(colorInk).Bold(true),
		Context:   lipgloss.NewStyle().Foreground(colorGray),
		Option:    lipgloss.NewStyle().Foreground(colorInk),
		Selected:  lipgloss.NewStyle().Foreground(colorPurpleDeep).Bold(true),
		Checked:   lipgloss.NewStyle().Foreground(colorGreenDeep),
		Desc:      lipgloss.NewStyle().Foreground(colorGray),
		Hint:      lipgloss.NewStyle().Foreground(colorGray),
		Indicator: lipgloss.NewStyle().Foreground(colorCyanDeep),
	}
}
