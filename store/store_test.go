package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	return s
}

func TestStore_NewCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	_, err := New(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err, "store file was not created")
}

func TestStore_AddChannel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AddChannel(ctx, Channel{ID: "UC1", Title: "First"})
	require.NoError(t, err)

	// Duplicate IDs are rejected.
	err = s.AddChannel(ctx, Channel{ID: "UC1", Title: "First again"})
	require.ErrorIs(t, err, ErrAlreadyExists)

	channels := s.Channels()
	require.Len(t, channels, 1)
	require.Equal(t, "First", channels[0].Title)
}

func TestStore_RemoveChannel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddChannel(ctx, Channel{ID: "UC1", Title: "First"}))
	require.NoError(t, s.AddChannel(ctx, Channel{ID: "UC2", Title: "Second"}))

	require.NoError(t, s.RemoveChannel(ctx, "UC1"))
	channels := s.Channels()
	require.Len(t, channels, 1)
	require.Equal(t, "UC2", channels[0].ID)

	require.ErrorIs(t, s.RemoveChannel(ctx, "UC1"), ErrNotFound)
}

func TestStore_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.AddChannel(ctx, Channel{ID: "UC1", Title: "First"}))
	require.NoError(t, s.SetSortMode(ctx, SortModeRandom))
	require.NoError(t, s.SetMuted(ctx, true))
	require.NoError(t, s.MarkSwipeHintSeen(ctx))

	// Everything survives a reopen.
	s2, err := New(path)
	require.NoError(t, err)
	require.Len(t, s2.Channels(), 1)
	require.Equal(t, SortModeRandom, s2.SortMode())
	require.True(t, s2.Muted())
	require.True(t, s2.SeenSwipeHint())
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path)
	require.ErrorIs(t, err, ErrStorageCorrupt)
}

func TestStore_InvalidSortModeReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.0", "sort_mode": "bogus"}`), 0o644))

	s, err := New(path)
	require.NoError(t, err)
	require.Equal(t, SortModeDate, s.SortMode())
}

func TestStore_SetSortMode(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.Equal(t, SortModeDate, s.SortMode())
	require.NoError(t, s.SetSortMode(ctx, SortModeRandom))
	require.Equal(t, SortModeRandom, s.SortMode())

	require.Error(t, s.SetSortMode(ctx, "newest"))
	require.Equal(t, SortModeRandom, s.SortMode())
}

func TestStore_MarkSwipeHintSeenIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.False(t, s.SeenSwipeHint())
	require.NoError(t, s.MarkSwipeHintSeen(ctx))
	require.NoError(t, s.MarkSwipeHintSeen(ctx))
	require.True(t, s.SeenSwipeHint())
}
