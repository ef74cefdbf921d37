package tui

import (
	"testing"
	"time"

	"github.com/achlioptas/chronik/internal/git"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func testModel(n int) Model {
	commits := make([]*git.Commit, 0, n)
	for i := 0; i < n; i++ {
		ts := time.Date(2024, 1, 1+i, 10, 0, 0, 0, time.UTC)
		c := git.NewCommit("hash", "Alice", ts, "change")
		c.Files = []git.ChangedFile{{Name: "main.go", Status: git.StatusModified}}
		commits = append(commits, c)
	}
	m := NewModel(commits, "main")
	m.width = 120
	m.height = 40
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestDownMovesSelectionAndClamps(t *testing.T) {
	m := testModel(3)
	require.Equal(t, 0, m.selected)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.selected)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.selected)

	// Already on the last commit, stays put.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.selected)
}

func TestUpMovesSelectionAndClamps(t *testing.T) {
	m := testModel(3)
	m.selected = 2

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 1, m.selected)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.selected)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.selected)
}

func TestSpaceTogglesSelectedCommit(t *testing.T) {
	m := testModel(2)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.False(t, m.commits[0].Expanded)
	require.True(t, m.commits[1].Expanded)

	// A second press collapses it again.
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.False(t, m.commits[1].Expanded)
}

func TestSpaceOnEmptyHistoryIsNoop(t *testing.T) {
	m := testModel(0)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.Nil(t, cmd)
	require.Equal(t, 0, next.(Model).selected)
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(2)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUnboundKeysAreInert(t *testing.T) {
	m := testModel(2)
	m.commits[0].Expanded = true

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyTab},
	} {
		next, cmd := m.Update(msg)
		require.Nil(t, cmd)
		got := next.(Model)
		require.Equal(t, m.selected, got.selected)
		require.True(t, got.commits[0].Expanded)
	}
}

func TestWindowSizeStored(t *testing.T) {
	m := testModel(1)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := next.(Model)
	require.Equal(t, 80, got.width)
	require.Equal(t, 24, got.height)
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := NewModel(nil, "main")
	require.Equal(t, "Initializing...", m.View())
}

func TestViewEmptyHistory(t *testing.T) {
	m := testModel(0)
	require.Contains(t, m.View(), "No commits to show.")
}

func TestViewReflectsExpansion(t *testing.T) {
	m := testModel(2)
	require.NotContains(t, m.View(), "main.go")

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.Contains(t, m.View(), "main.go")
}

func TestViewKeepsSelectionVisible(t *testing.T) {
	m := testModel(30)
	m.height = 10
	m.selected = len(m.commits) - 1

	require.Contains(t, m.View(), summaryLine(m.commits[29]))
}
