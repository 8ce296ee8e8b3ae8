// Package history persists accepted selections so past runs can be listed
// and re-used without redoing the interactive flow.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/photocat/gcsel/pkg/session"
)

// Run is one accepted selection: its pairs in accept order plus the scan
// root they were reconstructed against.
type Run struct {
	ID         string         `json:"id"`
	AcceptedAt time.Time      `json:"accepted_at"`
	Root       string         `json:"root"`
	Pairs      []session.Pair `json:"pairs"`
}

// Store manages the selection history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// init creates the database schema.
func (s *Store) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		accepted_at TIMESTAMP,
		root TEXT
	);

	CREATE TABLE IF NOT EXISTS run_entries (
		run_id TEXT,
		position INTEGER,
		path TEXT,
		label TEXT,
		PRIMARY KEY (run_id, position)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_accepted_at ON runs(accepted_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores an accepted selection and returns the persisted run.
func (s *Store) RecordRun(root string, pairs []session.Pair) (*Run, error) {
	run := &Run{
		ID:         uuid.NewString(),
		AcceptedAt: time.Now().UTC(),
		Root:       root,
		Pairs:      pairs,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(
		"INSERT INTO runs (id, accepted_at, root) VALUES (?, ?, ?)",
		run.ID, run.AcceptedAt, run.Root,
	); err != nil {
		return nil, err
	}
	for i, p := range pairs {
		if _, err := tx.Exec(
			"INSERT INTO run_entries (run_id, position, path, label) VALUES (?, ?, ?, ?)",
			run.ID, i, p.Path, p.Label,
		); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first, each with its pairs
// in accept order. A non-positive limit returns everything.
func (s *Store) ListRuns(limit int) ([]*Run, error) {
	query := "SELECT id, accepted_at, root FROM runs ORDER BY accepted_at DESC, id"
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(&run.ID, &run.AcceptedAt, &run.Root); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, run := range runs {
		if err := s.loadPairs(run); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) loadPairs(run *Run) error {
	rows, err := s.db.Query(
		"SELECT path, label FROM run_entries WHERE run_id = ? ORDER BY position",
		run.ID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p session.Pair
		if err := rows.Scan(&p.Path, &p.Label); err != nil {
			return err
		}
		run.Pairs = append(run.Pairs, p)
	}
	return rows.Err()
}

// Clear removes all recorded runs.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range []string{"DELETE FROM run_entries", "DELETE FROM runs"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("history: clear: %w", err)
		}
	}
	return tx.Commit()
}
