// Package store persists the client-local subscription list and user
// preferences as a single JSON file.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

const schemaVersion = "1.0"

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates the requested channel is not subscribed.
	ErrNotFound = errors.New("store: not found")
	// ErrAlreadyExists indicates the channel is already subscribed.
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrInvalidImport indicates a malformed settings payload; nothing was applied.
	ErrInvalidImport = errors.New("store: invalid import payload")
	// ErrStorageCorrupt indicates data corruption was detected on load.
	ErrStorageCorrupt = errors.New("store: data corruption detected")
)

// StoreError wraps store errors with operation context.
type StoreError struct {
	// Op is the operation that failed ("read", "write", "import").
	Op string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the store error.
func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *StoreError) Unwrap() error { return e.Err }

// Channel is a subscribed channel. Unique by ID within the store.
type Channel struct {
	// ID is the opaque catalog identifier (e.g., "UCxxxxxxxxxxxxxxx").
	ID string `json:"id"`
	// Title is the channel display name.
	Title string `json:"title"`
	// Thumbnail is the channel thumbnail URL.
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Known sort modes, mirrored by the feed package.
const (
	SortModeDate   = "date"
	SortModeRandom = "random"
)

// storeData is the on-disk JSON structure.
type storeData struct {
	Version       string    `json:"version"`
	UpdatedAt     time.Time `json:"updated_at"`
	Channels      []Channel `json:"channels"`
	SortMode      string    `json:"sort_mode"`
	Muted         bool      `json:"muted"`
	SeenSwipeHint bool      `json:"seen_swipe_hint"`
}

// Store holds subscribed channels and user preferences, persisted to a
// single JSON file with atomic writes. Safe for concurrent use.
type Store struct {
	path string
	mu   sync.RWMutex
	data *storeData
}

// New opens the store at the given path, loading existing data or creating
// an empty store.
func New(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the JSON file into memory. Creates empty data if file doesn't exist.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.data = &storeData{Version: schemaVersion, SortMode: SortModeDate}
			// Save immediately to catch permission errors early
			return s.save()
		}
		return &StoreError{Op: "read", Err: err}
	}

	s.data = &storeData{}
	if err := json.Unmarshal(data, s.data); err != nil {
		return &StoreError{Op: "read", Err: ErrStorageCorrupt}
	}
	if !validSortMode(s.data.SortMode) {
		s.data.SortMode = SortModeDate
	}

	return nil
}

// save persists the data to disk atomically. Callers hold s.mu.
func (s *Store) save() error {
	s.data.UpdatedAt = time.Now()

	writer, err := NewAtomicWriter(s.path)
	if err != nil {
		return &StoreError{Op: "write", Err: err}
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s.data); err != nil {
		writer.Abort()
		return &StoreError{Op: "write", Err: err}
	}

	if err := writer.Commit(); err != nil {
		return &StoreError{Op: "write", Err: err}
	}

	return nil
}

// Channels returns the subscribed channels in subscription order.
func (s *Store) Channels() []Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channels := make([]Channel, len(s.data.Channels))
	copy(channels, s.data.Channels)
	return channels
}

// AddChannel subscribes a channel. Returns ErrAlreadyExists if a channel
// with the same ID is already subscribed.
func (s *Store) AddChannel(ctx context.Context, channel Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.data.Channels {
		if c.ID == channel.ID {
			return ErrAlreadyExists
		}
	}

	s.data.Channels = append(s.data.Channels, channel)
	return s.save()
}

// RemoveChannel unsubscribes a channel by ID.
func (s *Store) RemoveChannel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.data.Channels {
		if c.ID == id {
			s.data.Channels = append(s.data.Channels[:i], s.data.Channels[i+1:]...)
			return s.save()
		}
	}

	return ErrNotFound
}

// SortMode returns the active sort mode ("date" or "random").
func (s *Store) SortMode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SortMode
}

// SetSortMode updates the active sort mode. Unknown modes are rejected.
func (s *Store) SetSortMode(ctx context.Context, mode string) error {
	if !validSortMode(mode) {
		return fmt.Errorf("store: unknown sort mode %q", mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SortMode = mode
	return s.save()
}

// Muted returns the stored mute preference.
func (s *Store) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Muted
}

// SetMuted updates the stored mute preference.
func (s *Store) SetMuted(ctx context.Context, muted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Muted = muted
	return s.save()
}

// SeenSwipeHint reports whether the one-time swipe hint was dismissed.
func (s *Store) SeenSwipeHint() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.SeenSwipeHint
}

// MarkSwipeHintSeen persists the swipe hint dismissal so it never reappears.
func (s *Store) MarkSwipeHintSeen(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.SeenSwipeHint {
		return nil
	}
	s.data.SeenSwipeHint = true
	return s.save()
}

func validSortMode(mode string) bool {
	return mode == SortModeDate || mode == SortModeRandom
}
