// Package store persists game snapshots and the day-to-day journal.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no snapshot exists for a slot.
var ErrNotFound = errors.New("store: snapshot not found")

// JournalEntry is one recorded headline: an action result or a rollover
// summary.
type JournalEntry struct {
	ID        string    `json:"id"`
	Slot      string    `json:"slot"`
	Day       int       `json:"day"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence collaborator. The engine never calls it; the
// server and CLI own the save-after-mutation ordering.
type Store interface {
	Migrate() error
	Close() error

	SaveSnapshot(slot string, data []byte) error
	LoadSnapshot(slot string) ([]byte, error)
	DeleteSnapshot(slot string) error

	AppendJournal(entry JournalEntry) error
	Journal(slot string, limit int) ([]JournalEntry, error)
}
