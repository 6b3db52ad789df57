package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSnapshot(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantEvents int
		wantUsers  int
	}{
		{
			name:       "empty input",
			raw:        "",
			wantEvents: 0,
		},
		{
			name:       "missing keys default to empty",
			raw:        `{"events": [{"slug": "a", "name": "A"}]}`,
			wantEvents: 1,
			wantUsers:  0,
		},
		{
			name:       "non-sequence value replaced defensively",
			raw:        `{"events": "oops", "users": [{"id": "u1", "email": "u1@example.com"}]}`,
			wantEvents: 0,
			wantUsers:  1,
		},
		{
			name:       "non-object document treated as empty",
			raw:        `[1, 2, 3]`,
			wantEvents: 0,
		},
		{
			name:       "null collection stays empty",
			raw:        `{"events": null}`,
			wantEvents: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := DecodeSnapshot([]byte(tt.raw))
			require.NoError(t, err)
			require.Len(t, snap.Events, tt.wantEvents)
			require.Len(t, snap.Users, tt.wantUsers)
			require.NotNil(t, snap.Attendances)
			require.NotNil(t, snap.SideEvents)
			require.NotNil(t, snap.MeetingRequests)
		})
	}
}

func TestDecodeSnapshot_InvalidJSON(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"events": [`))
	require.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	snap, err := DecodeSnapshot([]byte(`{
		"events": [{"slug": "a", "name": "A", "tags": ["go", "conf"]}],
		"attendances": [{"event_slug": "a", "user_id": "u1", "state": "ATTENDING", "visibility": "PRIVATE", "updated_at": "2025-06-01T10:00:00Z"}]
	}`))
	require.NoError(t, err)

	raw, err := EncodeSnapshot(snap)
	require.NoError(t, err)

	again, err := DecodeSnapshot(raw)
	require.NoError(t, err)
	require.Equal(t, snap, again)
}
