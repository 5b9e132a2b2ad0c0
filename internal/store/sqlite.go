package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL keeps reads cheap while a save is in flight
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the schema. Statements are idempotent so Migrate can run
// on every startup.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS journal (
			id TEXT PRIMARY KEY,
			slot TEXT NOT NULL,
			day INTEGER NOT NULL,
			kind TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_slot ON journal(slot, created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveSnapshot upserts the serialized state for a slot.
func (s *SQLiteStore) SaveSnapshot(slot string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, state, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		slot, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the serialized state for a slot, or ErrNotFound.
func (s *SQLiteStore) LoadSnapshot(slot string) ([]byte, error) {
	var data string
	err := s.db.QueryRow(`SELECT state FROM saves WHERE slot = ?`, slot).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return []byte(data), nil
}

// DeleteSnapshot removes a slot's save and journal.
func (s *SQLiteStore) DeleteSnapshot(slot string) error {
	if _, err := s.db.Exec(`DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM journal WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	return nil
}

// AppendJournal records one entry. A missing id or timestamp is filled in.
func (s *SQLiteStore) AppendJournal(entry JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO journal (id, slot, day, kind, message, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Slot, entry.Day, entry.Kind, entry.Message, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append journal: %w", err)
	}
	return nil
}

// Journal returns the most recent entries for a slot, newest first.
func (s *SQLiteStore) Journal(slot string, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, slot, day, kind, message, created_at FROM journal
		 WHERE slot = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.Slot, &e.Day, &e.Kind, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal: %w", err)
	}
	return entries, nil
}
