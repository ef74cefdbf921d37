package tui

import (
	"strings"

	"github.com/achlioptas/chronik/internal/git"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the chronik browser.
//
// It owns the only mutable session state: the selected index and the
// per-commit expansion flags. The commit sequence itself is built once
// before the program starts and is never added to, removed from, or
// reordered.
type Model struct {
	commits []*git.Commit
	branch  string

	// UI state
	selected int
	width    int
	height   int

	keys keyMap
}

// NewModel creates a browser over an already-parsed commit sequence.
func NewModel(commits []*git.Commit, branch string) Model {
	return Model{
		commits: commits,
		branch:  branch,
		keys:    defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

// Update applies at most one transition per message. Interrupt is matched
// ahead of every other binding; keys outside the table fall through with
// no state change.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if len(m.commits) > 0 {
				c := m.commits[m.selected]
				c.Expanded = !c.Expanded
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.commits)-1 {
				m.selected++
			}
			return m, nil
		}
		return m, nil
	}

	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

// View performs a full repaint: the frame is rebuilt from scratch on
// every state change, no incremental diffing.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	var body string
	if len(m.commits) == 0 {
		body = emptyStateStyle.Render("No commits to show.")
	} else {
		rows := buildFrame(m.commits, m.selected, summaryColumnWidth(m.commits))
		body = strings.Join(m.visibleRows(rows), "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// visibleRows trims the frame to the terminal height, keeping the selected
// commit's row on screen.
func (m Model) visibleRows(rows []string) []string {
	bodyHeight := m.height - 2 // header + footer
	if bodyHeight < 1 || len(rows) <= bodyHeight {
		return rows
	}

	start := clamp(m.selectedRowIndex()-bodyHeight+1, 0, len(rows)-bodyHeight)
	return rows[start : start+bodyHeight]
}

// selectedRowIndex locates the selected commit's row within the frame:
// one instruction row, then each prior commit contributes one summary row
// plus its file rows when expanded.
func (m Model) selectedRowIndex() int {
	idx := 1 + m.selected
	for _, c := range m.commits[:m.selected] {
		if c.Expanded {
			idx += len(c.Files)
		}
	}
	return idx
}
