package components

import (
	"strings"
	"testing"

	"github.com/abhisek/devmap/internal/ui/theme"
)

func TestProgressBarView(t *testing.T) {
	prev := theme.Enabled()
	theme.SetEnabled(false)
	defer theme.SetEnabled(prev)

	tests := []struct {
		name string
		bar  ProgressBar
		want string
	}{
		{"half", NewProgressBar("", 0.5, false, 10), "█████░░░░░"},
		{"full with percent", NewProgressBar("", 1, true, 10), "████  100%"},
		{"labelled", NewProgressBar("cov", 0, false, 9), "cov  ░░░░"},
		{"overflow clamps", NewProgressBar("", 3, false, 4), "████"},
		{"negative clamps", NewProgressBar("", -1, false, 4), "░░░░"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bar.View(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressBarMinimumWidth(t *testing.T) {
	prev := theme.Enabled()
	theme.SetEnabled(false)
	defer theme.SetEnabled(prev)

	got := NewProgressBar("a long label", 0, false, 5).View()
	if !strings.HasSuffix(got, "░░░░") {
		t.Errorf("got %q, want at least four cells", got)
	}
}
