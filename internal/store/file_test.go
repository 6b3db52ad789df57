package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"eventdirectory/internal/domain"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "data", "events.json"))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, snap.Events)
	require.Empty(t, snap.Users)
	require.Empty(t, snap.Attendances)
}

func TestFileStore_UpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "events.json")
	s := NewFileStore(path)

	err := s.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Events = append(snap.Events, &domain.Event{Slug: "gophercon", Name: "GopherCon", Tags: []string{"go"}})
		snap.Attendances = append(snap.Attendances, &domain.Attendance{
			EventSlug:  "gophercon",
			UserID:     "u1",
			State:      domain.StateAttending,
			Visibility: domain.VisibilityPublic,
			UpdatedAt:  "2025-01-01T00:00:00Z",
		})
		return nil
	})
	require.NoError(t, err)

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Events, 1)
	require.Equal(t, "gophercon", snap.Events[0].Slug)
	require.Len(t, snap.Attendances, 1)
	require.Equal(t, domain.StateAttending, snap.Attendances[0].State)
}

func TestFileStore_UpdateErrorLeavesFileUnchanged(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.json")
	s := NewFileStore(path)

	require.NoError(t, s.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Events = append(snap.Events, &domain.Event{Slug: "kept", Name: "Kept"})
		return nil
	}))

	boom := errors.New("boom")
	err := s.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Events = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Events, 1)
	require.Equal(t, "kept", snap.Events[0].Slug)
}

func TestFileStore_PreservesAuxiliaryCollections(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.json")
	doc := `{
		"events": [{"slug": "ev", "name": "Ev"}],
		"side_events": [{"event_slug": "ev", "kind": "afterparty", "capacity": 40}],
		"meeting_requests": [{"event_slug": "ev", "from": "u1", "to": "u2"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := NewFileStore(path)
	require.NoError(t, s.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Events[0].Name = "Ev renamed"
		return nil
	}))

	snap, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, snap.SideEvents, 1)
	require.Equal(t, "afterparty", snap.SideEvents[0]["kind"])
	require.Equal(t, "ev", snap.SideEvents[0].EventSlug())
	require.Len(t, snap.MeetingRequests, 1)
	require.Equal(t, "u2", snap.MeetingRequests[0]["to"])
}
