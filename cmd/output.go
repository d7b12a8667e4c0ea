package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/devmap/internal/ceiling"
	"github.com/abhisek/devmap/internal/ui/theme"
)

const nameWidth = 44

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// header prints a styled column header and a rule of the given width.
func header(w io.Writer, width int, format string, args ...any) {
	fmt.Fprintln(w, theme.Render(theme.Header, fmt.Sprintf(format, args...)))
	fmt.Fprintln(w, theme.Render(theme.Rule, strings.Repeat("─", width)))
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// level renders a padded, level-coloured label.
func level(l ceiling.Level, width int) string {
	return theme.Level(int(l), fmt.Sprintf("%-*s", width, fmt.Sprintf("%d %s", l, l)))
}
