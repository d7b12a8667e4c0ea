package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/devmap/internal/ui/theme"
)

// ProgressBar renders a ratio such as ceiling coverage or readiness.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar on a single line.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = p.Label + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}
	barWidth := max(4, p.Width-lipgloss.Width(result)-percentWidth)

	filled := min(barWidth, max(0, int(float64(barWidth)*p.Percent)))
	result += theme.Render(lipgloss.NewStyle().Foreground(theme.Secondary), strings.Repeat("█", filled))
	result += theme.Render(theme.Rule, strings.Repeat("░", barWidth-filled))

	if p.ShowPercent {
		result += theme.Render(theme.Hint, fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	return result
}
