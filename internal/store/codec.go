package store

import (
	"encoding/json"
	"fmt"

	"eventdirectory/internal/domain"
)

// DecodeSnapshot parses a persisted snapshot document. Missing collections
// default to empty; a non-sequence value under a known key is replaced with an
// empty sequence rather than failing the load. A document that is not a JSON
// object decodes as an empty snapshot.
func DecodeSnapshot(raw []byte) (*domain.Snapshot, error) {
	snap := domain.NewSnapshot()
	if len(raw) == 0 {
		return snap, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		var probe any
		if jerr := json.Unmarshal(raw, &probe); jerr != nil {
			return nil, fmt.Errorf("decode snapshot: %w", jerr)
		}
		// Valid JSON but not an object; treat as empty.
		return snap, nil
	}

	decodeCollection(doc, "events", &snap.Events)
	decodeCollection(doc, "users", &snap.Users)
	decodeCollection(doc, "attendances", &snap.Attendances)
	decodeCollection(doc, "side_events", &snap.SideEvents)
	decodeCollection(doc, "meeting_requests", &snap.MeetingRequests)
	return snap, nil
}

// decodeCollection leaves *dst untouched (empty) when the key is absent or its
// value does not decode as the expected sequence.
func decodeCollection[T any](doc map[string]json.RawMessage, key string, dst *[]T) {
	raw, ok := doc[key]
	if !ok {
		return
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return
	}
	if rows != nil {
		*dst = rows
	}
}

// EncodeSnapshot serializes the snapshot as an indented JSON document.
func EncodeSnapshot(snap *domain.Snapshot) ([]byte, error) {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return raw, nil
}
