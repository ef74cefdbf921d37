// Chronik — an interactive terminal browser for git commit history.
//
// Usage:
//
//	chronik [flags]
//
// Flags:
//
//	--repo      Path to the git repository (default: current directory)
//	--limit     Maximum number of commits to load, 0 for all (default: 0)
//	--cache     Path to the history cache database (default: ~/.chronik/cache.db)
//	--no-cache  Bypass the history cache entirely
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/achlioptas/chronik/internal/cache"
	"github.com/achlioptas/chronik/internal/git"
	"github.com/achlioptas/chronik/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	homeDir, _ := os.UserHomeDir()
	defaultCache := filepath.Join(homeDir, ".chronik", "cache.db")

	repoPath := flag.String("repo", ".", "Path to the git repository")
	limit := flag.Int("limit", 0, "Maximum number of commits to load (0 = all)")
	cachePath := flag.String("cache", defaultCache, "Path to the history cache database")
	noCache := flag.Bool("no-cache", false, "Bypass the history cache")
	flag.Parse()

	ctx := context.Background()
	runner := git.NewRunner(*repoPath)

	if !runner.IsRepo(ctx) {
		log.Fatalf("%s is not a git repository", *repoPath)
	}

	branch, err := runner.CurrentBranch(ctx)
	if err != nil {
		if errors.Is(err, git.ErrNoCurrentBranch) {
			log.Fatalf("no current branch in %s (empty repository?)", *repoPath)
		}
		log.Fatalf("resolving current branch: %v", err)
	}

	commits, err := loadHistory(ctx, runner, branch, *repoPath, *limit, *cachePath, *noCache)
	if err != nil {
		log.Fatalf("loading history: %v", err)
	}

	p := tea.NewProgram(tui.NewModel(commits, branch), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Browsed %d commits on %s. Goodbye.\n", len(commits), branch)
}

// loadHistory returns the parsed commit sequence for the branch, served
// from the cache when the cached HEAD still matches. Cache failures are
// logged and degrade to a fresh parse.
func loadHistory(ctx context.Context, runner *git.Runner, branch, repoPath string, limit int, cachePath string, noCache bool) ([]*git.Commit, error) {
	var store cache.Store
	if !noCache {
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
			log.Printf("cache unavailable at %s: %v", cachePath, err)
		} else if s, err := cache.NewSQLiteStore(cachePath); err != nil {
			log.Printf("cache unavailable at %s: %v", cachePath, err)
		} else {
			store = s
			defer s.Close()
		}
	}

	head, err := runner.HeadHash(ctx)
	if err != nil {
		return nil, err
	}

	// Limited loads never touch the cache: a truncated sequence must not
	// shadow the full one.
	cacheable := store != nil && limit == 0

	if cacheable {
		commits, err := store.LoadHistory(repoPath, branch, head)
		if err != nil {
			log.Printf("cache read failed: %v", err)
		} else if commits != nil {
			return commits, nil
		}
	}

	raw, err := runner.LogOutput(ctx, limit)
	if err != nil {
		return nil, err
	}

	commits, warnings := git.ParseLog(raw)
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}

	if cacheable {
		if err := store.SaveHistory(repoPath, branch, head, commits); err != nil {
			log.Printf("cache write failed: %v", err)
		}
	}

	return commits, nil
}
