package domain

import "context"

// AuxRecord is a row in an auxiliary collection (side_events,
// meeting_requests) kept for forward compatibility. The directory does not
// interpret these beyond the event_slug reference used for cascade deletes;
// all other fields round-trip verbatim.
type AuxRecord map[string]any

// EventSlug returns the row's event_slug reference, or "" when absent.
func (r AuxRecord) EventSlug() string {
	s, _ := r["event_slug"].(string)
	return s
}

// Snapshot is the whole persisted document: every collection, loaded and saved
// as one unit.
type Snapshot struct {
	Events          []*Event      `json:"events"`
	Users           []*User       `json:"users"`
	Attendances     []*Attendance `json:"attendances"`
	SideEvents      []AuxRecord   `json:"side_events"`
	MeetingRequests []AuxRecord   `json:"meeting_requests"`
}

// NewSnapshot returns an empty snapshot with all collections initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Events:          []*Event{},
		Users:           []*User{},
		Attendances:     []*Attendance{},
		SideEvents:      []AuxRecord{},
		MeetingRequests: []AuxRecord{},
	}
}

// EventBySlug returns the event with the given slug, or nil.
func (s *Snapshot) EventBySlug(slug string) *Event {
	for _, e := range s.Events {
		if e.Slug == slug {
			return e
		}
	}
	return nil
}

// SnapshotStore persists the snapshot with read-whole / write-whole
// discipline. Update runs the entire load-mutate-save cycle inside the
// store's critical section, so one logical write is one atomic replace.
// Mutation functions returning an error leave the stored snapshot unchanged.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Update(ctx context.Context, fn func(*Snapshot) error) error
}
