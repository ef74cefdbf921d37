package tui

import (
	"strings"

	"github.com/achlioptas/chronik/internal/git"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	markerCollapsed = "[+]"
	markerExpanded  = "[-]"

	// Width of the expand marker plus its trailing space. Every row of the
	// frame is padded to markerWidth + summaryColumnWidth display cells.
	markerWidth = 4

	fileIndent = "      "

	instructionLine = "↑/↓ move · space expand/collapse · ctrl+c quit"
)

// statusStyles maps a file status to the style of its whole rendered
// segment, not just the status letter.
var statusStyles = map[git.FileStatus]lipgloss.Style{
	git.StatusAdded:    fileAddedStyle,
	git.StatusDeleted:  fileDeletedStyle,
	git.StatusRenamed:  fileRenamedStyle,
	git.StatusCopied:   fileCopiedStyle,
	git.StatusModified: fileModifiedStyle,
}

// buildFrame produces the full list of display rows for the current state:
// the instructional header, one summary row per commit, and one indented
// file row per file of each expanded commit. It is a pure function of
// (commits, selected, summaryWidth) and performs no device I/O.
func buildFrame(commits []*git.Commit, selected, summaryWidth int) []string {
	rows := make([]string, 0, len(commits)+1)
	rows = append(rows, instructionStyle.Render(instructionLine))

	for i, c := range commits {
		rows = append(rows, commitRow(c, i == selected, summaryWidth))
		if !c.Expanded {
			continue
		}
		nameWidth := filenameColumnWidth(c)
		for _, f := range c.Files {
			rows = append(rows, fileRow(f, nameWidth, summaryWidth))
		}
	}

	return rows
}

// commitRow renders one summary row. The selected row's highlight spans
// the whole padded width, marker included, so padding is applied before
// styling.
func commitRow(c *git.Commit, selected bool, summaryWidth int) string {
	marker := markerCollapsed
	if c.Expanded {
		marker = markerExpanded
	}

	text := marker + " " + padRight(summaryLine(c), summaryWidth)
	if selected {
		return commitSelectedStyle.Render(text)
	}
	return commitRowStyle.Render(text)
}

// fileRow renders one changed-file row: icon, padded name (with the old
// path for renames), and the status letter right-aligned to the overall
// row width.
func fileRow(f git.ChangedFile, nameWidth, summaryWidth int) string {
	var b strings.Builder
	b.WriteString(fileIndent)
	b.WriteString(fileIcon(f.Name))
	b.WriteString(" ")
	b.WriteString(padRight(f.Name, nameWidth))
	if f.Status == git.StatusRenamed {
		b.WriteString(" ← ")
		b.WriteString(f.OldName)
	}

	gap := markerWidth + summaryWidth - runewidth.StringWidth(b.String()) - 1
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(f.Status.Letter())

	return statusStyles[f.Status].Render(b.String())
}
