// Package cache provides the parsed-history cache for chronik.
//
// Parsing a large repository's log is the slow part of startup, so the
// parsed commit sequence is persisted in SQLite, keyed by repository
// path, branch, and the HEAD hash observed at parse time. A HEAD that
// has moved invalidates the entry and forces a fresh parse. The cache
// is strictly an accelerator: any failure degrades to parsing again.
package cache

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"time"

	"github.com/achlioptas/chronik/internal/git"
	"github.com/achlioptas/chronik/pkg/timeutil"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store defines the interface for history persistence. The abstraction
// keeps the TUI and CLI independent of the SQLite backing.
type Store interface {
	// SaveHistory replaces the cached history for (repoPath, branch).
	SaveHistory(repoPath, branch, headHash string, commits []*git.Commit) error
	// LoadHistory returns the cached history for (repoPath, branch) if one
	// exists and was built at headHash. A miss or a stale HEAD returns
	// (nil, nil).
	LoadHistory(repoPath, branch, headHash string) ([]*git.Commit, error)

	// Close gracefully shuts down the database connection.
	Close() error
}

// SQLiteStore implements the Store interface using SQLite. Access is
// serialized with a read-write mutex; SQLite permits one writer at a time.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex

	stmtInsertHistory *sql.Stmt
	stmtInsertCommit  *sql.Stmt
	stmtInsertFile    *sql.Stmt
}

// NewSQLiteStore opens (or creates) a cache database at path, initializes
// the schema, and prepares the write-path statements.
//
// Use ":memory:" for an in-memory database in tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening cache at %s: %w", path, err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer at a time
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &SQLiteStore{db: db}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache schema: %w", err)
	}

	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing cache statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.stmtInsertHistory, err = s.db.Prepare(`
		INSERT INTO histories (repo_path, branch, head_hash, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertHistory: %w", err)
	}

	s.stmtInsertCommit, err = s.db.Prepare(`
		INSERT INTO commits (history_id, position, hash, author, committed_at, summary)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertCommit: %w", err)
	}

	s.stmtInsertFile, err = s.db.Prepare(`
		INSERT INTO changed_files (commit_id, position, name, old_name, status)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertFile: %w", err)
	}

	return nil
}

// SaveHistory replaces any existing entry for (repoPath, branch) and writes
// the full commit sequence in one transaction.
func (s *SQLiteStore) SaveHistory(repoPath, branch, headHash string, commits []*git.Commit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.Exec(
		`DELETE FROM histories WHERE repo_path = ? AND branch = ?`,
		repoPath, branch,
	); err != nil {
		return fmt.Errorf("evicting stale history: %w", err)
	}

	res, err := tx.Stmt(s.stmtInsertHistory).Exec(
		repoPath, branch, headHash, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("inserting history for %s@%s: %w", repoPath, branch, err)
	}
	historyID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("resolving history id: %w", err)
	}

	insertCommit := tx.Stmt(s.stmtInsertCommit)
	insertFile := tx.Stmt(s.stmtInsertFile)
	for i, c := range commits {
		// The RFC 2822 text keeps the original timezone offset, so the
		// reloaded display strings match the freshly parsed ones.
		res, err := insertCommit.Exec(
			historyID, i, c.Hash, c.Author,
			c.Timestamp.Format(timeutil.GitDateLayout), c.Summary,
		)
		if err != nil {
			return fmt.Errorf("inserting commit %s: %w", c.Hash, err)
		}
		commitID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("resolving commit id for %s: %w", c.Hash, err)
		}

		for j, f := range c.Files {
			if _, err := insertFile.Exec(
				commitID, j, f.Name, f.OldName, f.Status.Letter(),
			); err != nil {
				return fmt.Errorf("inserting file %s of commit %s: %w", f.Name, c.Hash, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// LoadHistory returns the cached commit sequence for (repoPath, branch),
// or (nil, nil) when there is no entry or the entry was built at a
// different HEAD.
func (s *SQLiteStore) LoadHistory(repoPath, branch, headHash string) ([]*git.Commit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		historyID  int64
		cachedHead string
	)
	err := s.db.QueryRow(
		`SELECT history_id, head_hash FROM histories WHERE repo_path = ? AND branch = ?`,
		repoPath, branch,
	).Scan(&historyID, &cachedHead)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying history for %s@%s: %w", repoPath, branch, err)
	}
	if cachedHead != headHash {
		return nil, nil
	}

	commits, err := s.loadCommits(historyID)
	if err != nil {
		return nil, err
	}
	return commits, nil
}

func (s *SQLiteStore) loadCommits(historyID int64) ([]*git.Commit, error) {
	rows, err := s.db.Query(`
		SELECT commit_id, hash, author, committed_at, summary
		FROM commits WHERE history_id = ? ORDER BY position
	`, historyID)
	if err != nil {
		return nil, fmt.Errorf("querying commits: %w", err)
	}
	defer rows.Close()

	var (
		commits []*git.Commit
		ids     []int64
	)
	for rows.Next() {
		var (
			id                             int64
			hash, author, rawDate, summary string
		)
		if err := rows.Scan(&id, &hash, &author, &rawDate, &summary); err != nil {
			return nil, fmt.Errorf("scanning commit row: %w", err)
		}
		ts, err := timeutil.ParseGitDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("cached date %q for commit %s: %w", rawDate, hash, err)
		}
		commits = append(commits, git.NewCommit(hash, author, ts, summary))
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating commit rows: %w", err)
	}

	for i, id := range ids {
		files, err := s.loadFiles(id)
		if err != nil {
			return nil, fmt.Errorf("commit %s: %w", commits[i].Hash, err)
		}
		commits[i].Files = files
	}

	return commits, nil
}

func (s *SQLiteStore) loadFiles(commitID int64) ([]git.ChangedFile, error) {
	rows, err := s.db.Query(`
		SELECT name, old_name, status
		FROM changed_files WHERE commit_id = ? ORDER BY position
	`, commitID)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	var files []git.ChangedFile
	for rows.Next() {
		var name, oldName, letter string
		if err := rows.Scan(&name, &oldName, &letter); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		status, ok := git.StatusFromLetter(letter)
		if !ok {
			return nil, fmt.Errorf("cached status letter %q for file %s", letter, name)
		}
		files = append(files, git.ChangedFile{Name: name, OldName: oldName, Status: status})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating file rows: %w", err)
	}

	return files, nil
}

// Close releases the prepared statements and the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{
		s.stmtInsertHistory, s.stmtInsertCommit, s.stmtInsertFile,
	} {
		if stmt != nil {
			stmt.Close()
		}
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing cache database: %w", err)
	}
	return nil
}
