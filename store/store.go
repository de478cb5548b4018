// Package store persists the ledger in a single SQLite file used as a
// key-value store: one row holds the serialized snapshot, another the
// optional PIN credential.
//
// The store is a collaborator of the ledger engine, never a participant:
// it loads and saves whole [cashpilot.State] snapshots and knows nothing
// about the operations that produced them.
package store

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"github.com/cashpilot/cashpilot"
)

const (
	keyRoot = "root"
	keyPIN  = "user_pin"
)

// migrations holds the schema statements, one statement per string.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE IF NOT EXISTS auth (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

// Store is a handle on the snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open store %q: %w", path, err)
	}
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("could not migrate store %q: %w", path, err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the persisted ledger state. A missing or malformed snapshot
// falls back to defaults field by field; Load never fails.
func (s *Store) Load() cashpilot.State {
	var blob []byte
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, keyRoot).Scan(&blob)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("store: could not read snapshot, using defaults: %v", err)
		}
		return cashpilot.DefaultState()
	}
	return cashpilot.MergeDefaults(blob)
}

// Save serializes the state and replaces the persisted snapshot. It is
// invoked after a successful state transition; a failure here is for the
// caller to log, never a reason to roll the in-memory state back.
func (s *Store) Save(state cashpilot.State) error {
	var buf bytes.Buffer
	if err := cashpilot.EncodeState(&buf, state); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		keyRoot, buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("could not save snapshot: %w", err)
	}
	return nil
}

// Usage returns a human-readable estimate of the snapshot size.
func (s *Store) Usage() string {
	var size int64
	err := s.db.QueryRow(`SELECT length(value) FROM app_state WHERE key = ?`, keyRoot).Scan(&size)
	if err != nil {
		return "0.00 KB"
	}
	if size > 1<<20 {
		return fmt.Sprintf("%.2f MB", float64(size)/(1<<20))
	}
	return fmt.Sprintf("%.2f KB", float64(size)/(1<<10))
}
