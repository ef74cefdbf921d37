package tui

import (
	"fmt"
	"strings"

	"github.com/achlioptas/chronik/pkg/timeutil"
	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	CHRONIK  |  main  |  42 commits  |  a1b2c3d4e5 · 3h ago
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("CHRONIK")
	sep := headerSepStyle.Render(" │ ")

	var parts []string
	parts = append(parts, brand)
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(truncate(m.branch, 32)))
	parts = append(parts, sep)
	parts = append(parts, headerMetaStyle.Render(
		fmt.Sprintf("%d commits", len(m.commits))))

	if len(m.commits) > 0 {
		c := m.commits[m.selected]
		parts = append(parts, sep)
		parts = append(parts, headerMetaStyle.Render(
			fmt.Sprintf("%s · %s", shortHash(c.Hash, 10), timeutil.RelativeTime(c.Timestamp))))
	}

	content := strings.Join(parts, "")

	return headerBarStyle.Width(m.width).Render(content)
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if len(m.commits) > 0 {
		left = statusStyle.Render(
			fmt.Sprintf("%d/%d", m.selected+1, len(m.commits)))
	}

	right := renderHints([]hint{
		{"↑↓", "move"},
		{"space", "expand/collapse"},
		{"ctrl+c", "quit"},
	})

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
