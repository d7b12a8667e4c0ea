package theme

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
)

// Color palette, one hue per assessment level plus chrome.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Rule = lipgloss.NewStyle().
		Foreground(Border)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Reason = lipgloss.NewStyle().
		Foreground(Accent)
)

// Levels, indexed by assessment level 0..3.
var levels = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(Error).Bold(true),
	lipgloss.NewStyle().Foreground(Accent),
	lipgloss.NewStyle().Foreground(Warning),
	lipgloss.NewStyle().Foreground(Success),
}

var enabled = term.IsTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == ""

// SetEnabled turns styling on or off.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether output is styled.
func Enabled() bool {
	return enabled
}

// Render applies a style when styling is enabled.
func Render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Level renders text in the colour of an assessment level.
func Level(level int, text string) string {
	if level < 0 || level >= len(levels) {
		return text
	}
	return Render(levels[level], text)
}
