package tui

import (
	"fmt"

	"github.com/achlioptas/chronik/internal/git"
	"github.com/mattn/go-runewidth"
)

// Layout widths are display-cell widths (go-runewidth), computed over
// plain text before any styling is applied. Padding arithmetic therefore
// never sees ANSI escape sequences.

// summaryLine is the unpadded text of a commit's summary row, without the
// expand marker.
func summaryLine(c *git.Commit) string {
	return fmt.Sprintf("%s %s | %s | %s", c.DisplayDate, c.DisplayTime, c.Author, c.Summary)
}

// summaryColumnWidth returns the width of the widest summary line across
// ALL commits, expanded or not. Using the full sequence keeps the column
// from jumping as rows expand and collapse.
func summaryColumnWidth(commits []*git.Commit) int {
	width := 0
	for _, c := range commits {
		if w := runewidth.StringWidth(summaryLine(c)); w > width {
			width = w
		}
	}
	return width
}

// filenameColumnWidth returns the width of the longest file name within a
// single commit. Each expanded commit aligns its own file column
// independently.
func filenameColumnWidth(c *git.Commit) int {
	width := 0
	for _, f := range c.Files {
		if w := runewidth.StringWidth(f.Name); w > width {
			width = w
		}
	}
	return width
}
