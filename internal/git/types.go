package git

import (
	"time"

	"github.com/achlioptas/chronik/pkg/timeutil"
)

// FileStatus classifies how a file changed within a commit.
type FileStatus int

const (
	StatusAdded FileStatus = iota
	StatusModified
	StatusDeleted
	StatusRenamed
	StatusCopied
)

// Letter returns the single-letter form used in rendered file rows.
func (s FileStatus) Letter() string {
	switch s {
	case StatusAdded:
		return "A"
	case StatusModified:
		return "M"
	case StatusDeleted:
		return "D"
	case StatusRenamed:
		return "R"
	case StatusCopied:
		return "C"
	default:
		return "?"
	}
}

// StatusFromLetter is the inverse of Letter. The second return value is
// false for letters outside the known set.
func StatusFromLetter(letter string) (FileStatus, bool) {
	s, ok := statusTable[letter]
	return s, ok
}

// ChangedFile is one file entry of a commit's name-status listing.
// OldName is set if and only if Status is StatusRenamed.
type ChangedFile struct {
	Name    string
	OldName string
	Status  FileStatus
}

// Commit is a single parsed commit. The sequence of commits is built once
// at startup and never mutated afterwards, except for the Expanded flag
// which the TUI toggles.
type Commit struct {
	Hash      string
	Author    string
	Timestamp time.Time
	Summary   string
	Files     []ChangedFile

	// Derived from Timestamp at construction and cached.
	DisplayDate string
	DisplayTime string

	// UI-only expansion state, false at creation.
	Expanded bool
}

// NewCommit builds a Commit with its display strings derived from ts.
func NewCommit(hash, author string, ts time.Time, summary string) *Commit {
	return &Commit{
		Hash:        hash,
		Author:      author,
		Timestamp:   ts,
		Summary:     summary,
		DisplayDate: timeutil.FormatDate(ts),
		DisplayTime: timeutil.FormatTime(ts),
	}
}
