package services

import (
	"context"
	"sort"
	"strings"

	"eventdirectory/internal/domain"
)

type eventCatalog struct {
	store domain.SnapshotStore
}

// NewEventCatalog creates an EventCatalog backed by the given snapshot store.
func NewEventCatalog(store domain.SnapshotStore) domain.EventCatalog {
	return &eventCatalog{store: store}
}

func (c *eventCatalog) Create(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	source := draft.Slug
	if source == "" {
		source = draft.Name
	}
	slug := Slugify(source)
	if slug == "" {
		return nil, domain.NewValidationError("slug or name is required")
	}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, domain.NewValidationError("event name is required")
	}

	event := &domain.Event{
		Slug:        slug,
		Name:        name,
		Description: strings.TrimSpace(draft.Description),
		WebsiteURL:  strings.TrimSpace(draft.WebsiteURL),
		StartAt:     strings.TrimSpace(draft.StartAt),
		EndAt:       strings.TrimSpace(draft.EndAt),
		City:        strings.TrimSpace(draft.City),
		Country:     strings.TrimSpace(draft.Country),
		Tags:        SplitTags(draft.Tags),
	}

	err := c.store.Update(ctx, func(snap *domain.Snapshot) error {
		if snap.EventBySlug(slug) != nil {
			return domain.NewValidationError("event slug already exists")
		}
		snap.Events = append(snap.Events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (c *eventCatalog) Update(ctx context.Context, slug string, patch domain.EventPatch) (*domain.Event, error) {
	var updated *domain.Event
	err := c.store.Update(ctx, func(snap *domain.Snapshot) error {
		found := snap.EventBySlug(slug)
		if found == nil {
			return domain.ErrNotFound
		}

		source := slug
		if patch.Slug != nil && *patch.Slug != "" {
			source = *patch.Slug
		}
		newSlug := Slugify(source)
		if newSlug != slug && snap.EventBySlug(newSlug) != nil {
			return domain.NewValidationError("event slug already exists")
		}

		patchString(&found.Name, patch.Name)
		patchString(&found.Description, patch.Description)
		patchString(&found.WebsiteURL, patch.WebsiteURL)
		patchString(&found.StartAt, patch.StartAt)
		patchString(&found.EndAt, patch.EndAt)
		patchString(&found.City, patch.City)
		patchString(&found.Country, patch.Country)
		if patch.Tags != nil {
			found.Tags = SplitTags(*patch.Tags)
		}
		found.Slug = newSlug

		// Slug rename cascades to every attendance row of this event, within
		// the same persisted snapshot as the event update itself.
		if newSlug != slug {
			for _, row := range snap.Attendances {
				if row.EventSlug == slug {
					row.EventSlug = newSlug
				}
			}
		}

		updated = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func patchString(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

func (c *eventCatalog) Delete(ctx context.Context, slug string) error {
	return c.store.Update(ctx, func(snap *domain.Snapshot) error {
		kept := snap.Events[:0]
		for _, e := range snap.Events {
			if e.Slug != slug {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(snap.Events) {
			return domain.ErrNotFound
		}
		snap.Events = kept

		rows := snap.Attendances[:0]
		for _, row := range snap.Attendances {
			if row.EventSlug != slug {
				rows = append(rows, row)
			}
		}
		snap.Attendances = rows
		snap.SideEvents = dropAuxBySlug(snap.SideEvents, slug)
		snap.MeetingRequests = dropAuxBySlug(snap.MeetingRequests, slug)
		return nil
	})
}

func dropAuxBySlug(rows []domain.AuxRecord, slug string) []domain.AuxRecord {
	kept := rows[:0]
	for _, row := range rows {
		if row.EventSlug() != slug {
			kept = append(kept, row)
		}
	}
	return kept
}

func (c *eventCatalog) Find(ctx context.Context, slug string) (*domain.Event, error) {
	snap, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	event := snap.EventBySlug(slug)
	if event == nil {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (c *eventCatalog) Search(ctx context.Context, query, city string) ([]*domain.Event, error) {
	snap, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	cty := strings.ToLower(strings.TrimSpace(city))

	filtered := []*domain.Event{}
	for _, e := range snap.Events {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			continue
		}
		if cty != "" && !strings.Contains(strings.ToLower(e.City), cty) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].StartAt != filtered[j].StartAt {
			return filtered[i].StartAt < filtered[j].StartAt
		}
		return filtered[i].Slug < filtered[j].Slug
	})
	return filtered, nil
}
