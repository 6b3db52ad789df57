package domain

import "context"

// Event represents a conference event. Timestamps are stored as ISO-8601
// strings and compared lexically; well-formed inputs sort chronologically
// without parsing.
// swagger:model Event
type Event struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	WebsiteURL  string   `json:"website_url"`
	StartAt     string   `json:"start_at"`
	EndAt       string   `json:"end_at"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Tags        []string `json:"tags"`
}

// EventDraft is the payload for creating an event. Slug may be empty, in which
// case it is derived from Name. Tags is a comma-separated list.
type EventDraft struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Tags        string `json:"tags"`
}

// EventPatch is the payload for updating an event. Nil fields keep the stored
// value; non-nil fields overwrite it, even when empty. A nil or empty Slug
// keeps the current slug; a different slug renames the event and cascades to
// its attendance rows.
type EventPatch struct {
	Slug        *string `json:"slug"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	WebsiteURL  *string `json:"website_url"`
	StartAt     *string `json:"start_at"`
	EndAt       *string `json:"end_at"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	Tags        *string `json:"tags"`
}

// EventCatalog defines CRUD over events with slug uniqueness and cascading
// cleanup of dependent rows on delete and rename.
type EventCatalog interface {
	Create(ctx context.Context, draft EventDraft) (*Event, error)
	Update(ctx context.Context, slug string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, slug string) error
	Find(ctx context.Context, slug string) (*Event, error)
	// Search filters case-insensitively: query against name or description,
	// city against city. Results are sorted ascending by (start_at, slug).
	Search(ctx context.Context, query, city string) ([]*Event, error)
}
