// Package timeutil provides time formatting utilities for chronik.
//
// Commit timestamps arrive from git in RFC-2822 form and are converted
// once, at parse time, into the display strings shown in the TUI.
package timeutil

import (
	"fmt"
	"time"
)

// GitDateLayout matches the date format git emits for the %aD
// pretty-format placeholder: RFC 2822 with the day of month not
// zero-padded. The "2" form accepts both padded and unpadded days,
// unlike time.RFC1123Z whose "02" requires two digits.
const GitDateLayout = "Mon, 2 Jan 2006 15:04:05 -0700"

// ParseGitDate parses a raw date string as emitted by git log.
func ParseGitDate(raw string) (time.Time, error) {
	return time.Parse(GitDateLayout, raw)
}

// FormatDate renders the date half of a commit row, e.g. "Jan 1, 2024".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatTime renders the time half of a commit row, e.g. "10:00:00".
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// RelativeTime returns a human-readable relative time string.
// Examples: "just now", "5s ago", "2m ago", "1h ago"
func RelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Second:
		return "just now"
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}
