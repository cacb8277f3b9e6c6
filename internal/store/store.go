package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database and hands out repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Solves returns the solve event repository.
func (s *Store) Solves() SolveRepo {
	return &solveRepo{db: s.db, seq: s.seq}
}

// Reviews returns the review event repository.
func (s *Store) Reviews() ReviewRepo {
	return &reviewRepo{db: s.db, seq: s.seq}
}

// Sessions returns the study session event repository.
func (s *Store) Sessions() SessionRepo {
	return &sessionRepo{db: s.db, seq: s.seq}
}

// Snapshots returns the snapshot repository.
func (s *Store) Snapshots() SnapshotRepo {
	return &snapshotRepo{db: s.db, seq: s.seq}
}

// Reset wipes all events and snapshots. The sequence counter keeps
// counting so anything written afterwards still sorts after the wipe.
func (s *Store) Reset(ctx context.Context) error {
	tables := []string{"solve_events", "review_events", "session_events", "snapshots"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS solve_events (
	seq           INTEGER PRIMARY KEY,
	id            TEXT NOT NULL,
	session_id    TEXT NOT NULL DEFAULT '',
	slug          TEXT NOT NULL,
	problem       TEXT NOT NULL,
	logged_on     TEXT NOT NULL,
	minutes       INTEGER NOT NULL,
	approach      TEXT NOT NULL DEFAULT '',
	challenges    TEXT NOT NULL DEFAULT '',
	solution      TEXT NOT NULL DEFAULT '',
	solution_path TEXT NOT NULL DEFAULT '',
	created_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_solve_events_slug ON solve_events(slug);
CREATE INDEX IF NOT EXISTS idx_solve_events_logged_on ON solve_events(logged_on);

CREATE TABLE IF NOT EXISTS review_events (
	seq        INTEGER PRIMARY KEY,
	id         TEXT NOT NULL,
	session_id TEXT NOT NULL DEFAULT '',
	slug       TEXT NOT NULL,
	action     TEXT NOT NULL,
	due_on     TEXT NOT NULL,
	next_on    TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_review_events_slug ON review_events(slug);

CREATE TABLE IF NOT EXISTS session_events (
	seq           INTEGER PRIMARY KEY,
	id            TEXT NOT NULL,
	session_id    TEXT NOT NULL,
	action        TEXT NOT NULL,
	solves        INTEGER NOT NULL DEFAULT 0,
	reviews       INTEGER NOT NULL DEFAULT 0,
	duration_secs INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence   INTEGER NOT NULL,
	timestamp  TEXT NOT NULL,
	data       TEXT NOT NULL
);
`

// migrate creates the schema. Every statement is idempotent.
func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. GRIND_DB environment variable
// 2. $XDG_DATA_HOME/grind/grind.db
// 3. ~/.local/share/grind/grind.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("GRIND_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "grind", "grind.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
