package timeutil

import (
	"testing"
	"time"
)

func TestParseGitDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "unpadded day",
			input: "Mon, 1 Jan 2024 10:00:00 +0000",
			want:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "padded day",
			input: "Mon, 15 Jan 2024 10:00:00 +0000",
			want:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "non-utc offset",
			input: "Tue, 2 Jan 2024 09:30:00 +0200",
			want:  time.Date(2024, 1, 2, 9, 30, 0, 0, time.FixedZone("", 2*3600)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGitDate(tt.input)
			if err != nil {
				t.Fatalf("ParseGitDate(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseGitDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGitDateRejectsGarbage(t *testing.T) {
	if _, err := ParseGitDate("not a date"); err == nil {
		t.Error("expected error for unparseable input")
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "Jan 1, 2024" {
		t.Errorf("FormatDate = %q, want %q", got, "Jan 1, 2024")
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 1, 1, 9, 5, 7, 0, time.UTC)
	if got := FormatTime(ts); got != "09:05:07" {
		t.Errorf("FormatTime = %q, want %q", got, "09:05:07")
	}
}

func TestFormatTimeKeepsOffsetWallClock(t *testing.T) {
	ts := time.Date(2024, 1, 1, 9, 30, 0, 0, time.FixedZone("", 2*3600))
	if got := FormatTime(ts); got != "09:30:00" {
		t.Errorf("FormatTime = %q, want %q", got, "09:30:00")
	}
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "30s ago"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"hours", 3 * time.Hour, "3h ago"},
		{"days", 49 * time.Hour, "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(time.Now().Add(-tt.ago)); got != tt.want {
				t.Errorf("RelativeTime = %q, want %q", got, tt.want)
			}
		})
	}
}
