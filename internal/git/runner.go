package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// logFormat produces the header line of each commit block:
// full hash, author name, RFC-2822 author date, subject.
const logFormat = "%H|%an|%aD|%s"

// ErrNoCurrentBranch is returned when the branch listing contains no entry
// marked as current. The caller treats this as a fatal precondition.
var ErrNoCurrentBranch = errors.New("no current branch found")

// Runner shells out to the git executable for repository data.
type Runner struct {
	RepoPath string
}

// NewRunner creates a Runner for the given repository path.
func NewRunner(repoPath string) *Runner {
	return &Runner{RepoPath: repoPath}
}

// IsRepo reports whether the path is inside a git repository.
func (r *Runner) IsRepo(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = r.RepoPath
	return cmd.Run() == nil
}

// LogOutput returns the raw history text consumed by ParseLog: one block
// per commit with a pipe-delimited header and tab-separated name-status
// lines. A limit of 0 means the full history.
func (r *Runner) LogOutput(ctx context.Context, limit int) (string, error) {
	args := []string{"log", "--pretty=format:" + logFormat, "--name-status"}
	if limit > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", limit))
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.RepoPath

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running git log: %w", err)
	}
	return string(output), nil
}

// CurrentBranch returns the checked-out branch name. The branch listing
// marks exactly one line with a "* " prefix; its absence (e.g. an empty
// repository) yields ErrNoCurrentBranch.
func (r *Runner) CurrentBranch(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "branch")
	cmd.Dir = r.RepoPath

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running git branch: %w", err)
	}

	branch, err := parseCurrentBranch(string(output))
	if err != nil {
		return "", err
	}
	return branch, nil
}

// parseCurrentBranch extracts the "* "-prefixed entry from newline-separated
// branch-listing output.
func parseCurrentBranch(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if name, ok := strings.CutPrefix(line, "* "); ok {
			return strings.TrimSpace(name), nil
		}
	}
	return "", ErrNoCurrentBranch
}

// HeadHash returns the full hash of HEAD. Used as the history cache key:
// a changed HEAD invalidates the cached parse.
func (r *Runner) HeadHash(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "HEAD")
	cmd.Dir = r.RepoPath

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
