package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, err := s.LoadSnapshot("default")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SaveSnapshot("default", []byte(`{"day":1}`)))
	got, err := s.LoadSnapshot("default")
	require.NoError(t, err)
	assert.Equal(t, `{"day":1}`, string(got))

	// upsert overwrites
	require.NoError(t, s.SaveSnapshot("default", []byte(`{"day":2}`)))
	got, err = s.LoadSnapshot("default")
	require.NoError(t, err)
	assert.Equal(t, `{"day":2}`, string(got))
}

func TestSlotsAreIndependent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveSnapshot("a", []byte(`{"day":1}`)))
	require.NoError(t, s.SaveSnapshot("b", []byte(`{"day":7}`)))

	got, err := s.LoadSnapshot("b")
	require.NoError(t, err)
	assert.Equal(t, `{"day":7}`, string(got))
}

func TestDeleteSnapshot(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveSnapshot("default", []byte(`{}`)))
	require.NoError(t, s.AppendJournal(JournalEntry{Slot: "default", Day: 1, Kind: "action", Message: "did a thing"}))

	require.NoError(t, s.DeleteSnapshot("default"))

	_, err := s.LoadSnapshot("default")
	assert.ErrorIs(t, err, ErrNotFound)
	entries, err := s.Journal("default", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalOrderAndLimit(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 5; i++ {
		require.NoError(t, s.AppendJournal(JournalEntry{
			Slot:    "default",
			Day:     i,
			Kind:    "rollover",
			Message: "morning",
		}))
	}

	entries, err := s.Journal("default", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.NotEmpty(t, e.ID, "missing id should be backfilled")
		assert.False(t, e.CreatedAt.IsZero())
	}
}
