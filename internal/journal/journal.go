// Package journal persists an audit trail of tracker mutations in SQLite.
//
// Every bulk workflow run gets a run ID; every add/remove request against
// the Web API becomes one [Entry] under that run, successful or not. The
// journal exists so an operator can answer "what did that bulk removal
// actually touch" after the TUI session is gone.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/qbtui/internal/shared"
)

// Mutation operation names as stored in the journal.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// Entry is one recorded mutation attempt.
type Entry struct {
	ID          string
	RunID       string
	Op          string
	TrackerURL  string
	TorrentHash string
	TorrentName string
	OK          bool
	Detail      string
	CreatedAt   time.Time
}

// Store reads and writes journal entries.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open database. The journal_entries
// table must already exist (see shared.RunMigrations).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record inserts one entry, generating its ID and timestamp when unset.
func (s *Store) Record(entry Entry) error {
	if entry.ID == "" {
		entry.ID = shared.GenerateID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO journal_entries (id, run_id, op, tracker_url, torrent_hash, torrent_name, ok, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		entry.ID,
		entry.RunID,
		entry.Op,
		entry.TrackerURL,
		entry.TorrentHash,
		entry.TorrentName,
		entry.OK,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, run_id, op, tracker_url, torrent_hash, torrent_name, ok, detail, created_at
		FROM journal_entries
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ByRun returns all entries of one workflow run in insertion order.
func (s *Store) ByRun(runID string) ([]Entry, error) {
	query := `
		SELECT id, run_id, op, tracker_url, torrent_hash, torrent_name, ok, detail, created_at
		FROM journal_entries
		WHERE run_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(&e.ID, &e.RunID, &e.Op, &e.TrackerURL, &e.TorrentHash, &e.TorrentName, &e.OK, &e.Detail, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}

	return entries, nil
}
