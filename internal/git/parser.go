package git

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/achlioptas/chronik/pkg/timeutil"
)

// headerFieldCount is the number of pipe-delimited fields in a commit
// header line: hash|author|rawDate|summary. The summary itself may contain
// pipes, so the header is split at most headerFieldCount times and the
// remainder is kept intact as the summary.
const headerFieldCount = 4

// statusTable maps a name-status letter to its FileStatus. Rename and copy
// codes may carry a trailing similarity percentage (R100, C75); the digits
// are stripped before lookup.
var statusTable = map[string]FileStatus{
	"A": StatusAdded,
	"M": StatusModified,
	"D": StatusDeleted,
	"R": StatusRenamed,
	"C": StatusCopied,
}

// ParseLog converts raw log text into an ordered commit sequence.
//
// The input format is one block per commit, blocks separated by a blank
// line. The first line of a block is the pipe-delimited header; every
// following line is a tab-separated name-status entry. A malformed block
// (short header, unparseable date) is skipped with a warning rather than
// failing the whole parse; an unrecognized status code drops only that
// file entry.
func ParseLog(raw string) ([]*Commit, []string) {
	var (
		commits  []*Commit
		warnings []string
		block    []string
	)

	flush := func() {
		if len(block) == 0 {
			return
		}
		commit, warns := parseBlock(block)
		warnings = append(warnings, warns...)
		if commit != nil {
			commits = append(commits, commit)
		}
		block = block[:0]
	}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()

	return commits, warnings
}

// parseBlock parses one commit block. It returns nil (plus warnings) when
// the block is malformed.
func parseBlock(lines []string) (*Commit, []string) {
	var warnings []string

	fields := strings.SplitN(lines[0], "|", headerFieldCount)
	if len(fields) < headerFieldCount {
		return nil, append(warnings,
			fmt.Sprintf("skipping malformed commit header %q: want %d fields, got %d",
				lines[0], headerFieldCount, len(fields)))
	}

	hash, author, rawDate, summary := fields[0], fields[1], fields[2], fields[3]

	ts, err := timeutil.ParseGitDate(rawDate)
	if err != nil {
		return nil, append(warnings,
			fmt.Sprintf("skipping commit %s: unparseable date %q: %v", hash, rawDate, err))
	}

	commit := NewCommit(hash, author, ts, summary)

	for _, line := range lines[1:] {
		file, err := parseFileLine(line)
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("commit %s: dropping file entry: %v", hash, err))
			continue
		}
		commit.Files = append(commit.Files, file)
	}

	return commit, warnings
}

// parseFileLine parses a single name-status entry:
//
//	statusCode<TAB>path                       (A/M/D/C)
//	statusCode<TAB>oldPath<TAB>newPath        (renames and copies)
func parseFileLine(line string) (ChangedFile, error) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 2 {
		return ChangedFile{}, fmt.Errorf("malformed file line %q", line)
	}

	code := strings.TrimRight(parts[0], "0123456789")
	status, ok := statusTable[code]
	if !ok {
		return ChangedFile{}, fmt.Errorf("unrecognized status code %q", parts[0])
	}

	switch status {
	case StatusRenamed, StatusCopied:
		if len(parts) < 3 {
			return ChangedFile{}, fmt.Errorf("status %s needs old and new path in %q", parts[0], line)
		}
		file := ChangedFile{Name: parts[2], Status: status}
		// OldName is carried only for renames.
		if status == StatusRenamed {
			file.OldName = parts[1]
		}
		return file, nil
	default:
		return ChangedFile{Name: parts[1], Status: status}, nil
	}
}
