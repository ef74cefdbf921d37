package tui

import (
	"strings"
	"testing"

	"github.com/achlioptas/chronik/internal/git"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBuildFrameStartsWithInstructionRow(t *testing.T) {
	commits := []*git.Commit{testCommit("Alice", "Fix bug")}
	rows := buildFrame(commits, 0, summaryColumnWidth(commits))

	require.NotEmpty(t, rows)
	require.Contains(t, rows[0], "space expand/collapse")
}

func TestBuildFrameCollapsedShowsOnlySummaries(t *testing.T) {
	c := testCommit("Alice", "Fix bug")
	c.Files = []git.ChangedFile{
		{Name: "main.go", Status: git.StatusModified},
		{Name: "util.go", Status: git.StatusAdded},
	}
	commits := []*git.Commit{c, testCommit("Bob", "Tweak")}

	rows := buildFrame(commits, 0, summaryColumnWidth(commits))
	require.Len(t, rows, 3) // instruction + 2 summaries
	require.Contains(t, rows[1], markerCollapsed)
	require.NotContains(t, strings.Join(rows, "\n"), "main.go")
}

func TestBuildFrameExpandedInsertsFileRows(t *testing.T) {
	c := testCommit("Alice", "Fix bug")
	c.Files = []git.ChangedFile{
		{Name: "main.go", Status: git.StatusModified},
		{Name: "util.go", Status: git.StatusAdded},
	}
	c.Expanded = true
	commits := []*git.Commit{c}

	rows := buildFrame(commits, 0, summaryColumnWidth(commits))
	require.Len(t, rows, 4) // instruction + summary + 2 files
	require.Contains(t, rows[1], markerExpanded)
	require.Contains(t, rows[2], "main.go")
	require.Contains(t, rows[3], "util.go")
}

func TestBuildFrameExpandedEmptyCommit(t *testing.T) {
	c := testCommit("Alice", "Empty merge")
	c.Expanded = true
	commits := []*git.Commit{c}

	rows := buildFrame(commits, 0, summaryColumnWidth(commits))
	require.Len(t, rows, 2) // instruction + summary, no file rows
	require.Contains(t, rows[1], markerExpanded)
}

func TestCommitRowPaddedToFullWidth(t *testing.T) {
	short := testCommit("Bob", "Tweak")
	long := testCommit("Alice", "A much longer summary to set the column")
	width := summaryColumnWidth([]*git.Commit{short, long})

	// Both rows occupy the same display width so the selection highlight
	// forms a uniform block regardless of summary length.
	selected := commitRow(short, true, width)
	unselected := commitRow(long, false, width)
	require.Equal(t, markerWidth+width, lipgloss.Width(selected))
	require.Equal(t, markerWidth+width, lipgloss.Width(unselected))
}

func TestFileRowStatusLetterRightAligned(t *testing.T) {
	files := []git.ChangedFile{
		{Name: "a.go", Status: git.StatusAdded},
		{Name: "internal/long/path/name.go", Status: git.StatusDeleted},
	}
	c := testCommit("Alice", "Fix bug and adjust a couple of related things")
	c.Files = files
	width := summaryColumnWidth([]*git.Commit{c})
	nameWidth := filenameColumnWidth(c)

	rowA := fileRow(files[0], nameWidth, width)
	rowD := fileRow(files[1], nameWidth, width)
	require.Equal(t, markerWidth+width, lipgloss.Width(rowA))
	require.Equal(t, markerWidth+width, lipgloss.Width(rowD))
	require.True(t, strings.HasSuffix(rowA, "A"))
	require.True(t, strings.HasSuffix(rowD, "D"))
}

func TestFileRowRenameShowsOldName(t *testing.T) {
	f := git.ChangedFile{
		Name:    "internal/tui/frame.go",
		OldName: "internal/tui/render.go",
		Status:  git.StatusRenamed,
	}
	row := fileRow(f, len(f.Name), 80)
	require.Contains(t, row, "internal/tui/frame.go ← internal/tui/render.go")
	require.True(t, strings.HasSuffix(row, "R"))
}

func TestFileRowCopyOmitsOldName(t *testing.T) {
	f := git.ChangedFile{Name: "copy.go", Status: git.StatusCopied}
	row := fileRow(f, len(f.Name), 60)
	require.NotContains(t, row, "←")
	require.True(t, strings.HasSuffix(row, "C"))
}
