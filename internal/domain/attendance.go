package domain

import "context"

// AttendanceState is the declared intent of an attendee for an event.
type AttendanceState string

const (
	StateInterested AttendanceState = "INTERESTED"
	StateAttending  AttendanceState = "ATTENDING"
)

// AttendanceVisibility controls who may see an attendance row.
type AttendanceVisibility string

const (
	VisibilityPublic       AttendanceVisibility = "PUBLIC"
	VisibilityVerifiedOnly AttendanceVisibility = "VERIFIED_ONLY"
	VisibilityPrivate      AttendanceVisibility = "PRIVATE"
)

// Attendee list limits by viewer tier.
const (
	FreeAttendeeLimit = 25
	ProAttendeeLimit  = 500
)

// Attendance is one row per (event_slug, user_id) pair. UpdatedAt is an
// ISO-8601 UTC timestamp with seconds precision and a Z suffix, set
// server-side on every write.
// swagger:model Attendance
type Attendance struct {
	EventSlug  string               `json:"event_slug"`
	UserID     string               `json:"user_id"`
	State      AttendanceState      `json:"state"`
	Visibility AttendanceVisibility `json:"visibility"`
	UpdatedAt  string               `json:"updated_at"`
}

// AttendanceLedger owns the attendance row lifecycle: upsert on write, cascade
// delete only through event deletion.
type AttendanceLedger interface {
	// Upsert overwrites state, visibility, and updated_at for an existing
	// (event_slug, user_id) row, or inserts a new one. Returns ErrNotFound if
	// the event does not exist and a ValidationError for bad enum values.
	Upsert(ctx context.Context, eventSlug, userID string, state AttendanceState, visibility AttendanceVisibility) (*Attendance, error)
	// GetForUser returns the row for the pair, or ErrNotFound.
	GetForUser(ctx context.Context, eventSlug, userID string) (*Attendance, error)
}

// AttendeeFilters narrows the attendee listing. Company and Title are
// case-insensitive substring matches against the owning user; State is an
// exact match against the row.
type AttendeeFilters struct {
	Company string
	Title   string
	State   AttendanceState
}

// AttendeeRecord is the disclosure projection of a visible attendance row.
// swagger:model AttendeeRecord
type AttendeeRecord struct {
	UserID     string               `json:"user_id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Company    string               `json:"company"`
	Title      string               `json:"title"`
	State      AttendanceState      `json:"state"`
	Visibility AttendanceVisibility `json:"visibility"`
	UpdatedAt  string               `json:"updated_at"`
}

// AttendeePage is the result of an attendee listing. TotalVisible counts rows
// that passed the disclosure predicate and filters before limiting, letting a
// caller distinguish "nothing matches" from "truncated by tier".
// swagger:model AttendeePage
type AttendeePage struct {
	Items        []AttendeeRecord `json:"items"`
	TotalVisible int              `json:"total_visible"`
	Limit        int              `json:"limit"`
}

// AttendeeDirectory computes the ordered, access-filtered, tier-limited
// attendee list for an event as seen by a viewer. A nil viewer is anonymous.
type AttendeeDirectory interface {
	ListVisibleAttendees(ctx context.Context, eventSlug string, viewer *User, filters AttendeeFilters) (*AttendeePage, error)
}
