package store

import (
	"context"
	"encoding/json"
)

// exportPayload is the settings interchange format, version "1.0".
type exportPayload struct {
	Channels []Channel `json:"channels"`
	SortMode string    `json:"sortMode"`
	IsMuted  bool      `json:"isMuted"`
	Version  string    `json:"version"`
}

// importPayload keeps channels raw so presence and shape can be validated
// separately, and optional fields distinguishable from their zero values.
type importPayload struct {
	Channels json.RawMessage `json:"channels"`
	SortMode string          `json:"sortMode"`
	IsMuted  *bool           `json:"isMuted"`
	Version  string          `json:"version"`
}

// Export returns the current settings as an indented JSON blob.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	payload := exportPayload{
		Channels: append([]Channel(nil), s.data.Channels...),
		SortMode: s.data.SortMode,
		IsMuted:  s.data.Muted,
		Version:  schemaVersion,
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, &StoreError{Op: "export", Err: err}
	}
	return data, nil
}

// Import replaces the channel list and preferences from a settings blob.
// The blob must contain a "channels" JSON array or the import fails with
// ErrInvalidImport and nothing changes. Unrecognized or missing optional
// fields keep their current values.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrInvalidImport
	}
	if len(payload.Channels) == 0 {
		return ErrInvalidImport
	}

	var channels []Channel
	if err := json.Unmarshal(payload.Channels, &channels); err != nil {
		return ErrInvalidImport
	}
	if channels == nil {
		// "channels": null parses but is not an array.
		return ErrInvalidImport
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Channels = channels
	if validSortMode(payload.SortMode) {
		s.data.SortMode = payload.SortMode
	}
	if payload.IsMuted != nil {
		s.data.Muted = *payload.IsMuted
	}

	return s.save()
}
