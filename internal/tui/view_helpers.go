package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 72

var (
	dividerStyle = lipgloss.NewStyle().Faint(true)
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// renderPage frames body between two dividers with the page's key hints
// underneath. "q: quit" is always shown.
func renderPage(title, body, hotKeys string) string {
	divider := bodyStyle.Render(dividerStyle.Render(strings.Repeat("─", pageWidth-2)))

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	hints := "q: quit"
	if hk := strings.TrimSpace(hotKeys); hk != "" {
		hints = hk + "  " + hints
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		bodyStyle.Render(strings.TrimRight(body, "\n")),
		"",
		divider,
		bodyStyle.Render(helpStyle.Render(hints)),
	))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}

// fitText cuts v to at most max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
