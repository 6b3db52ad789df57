package services

import (
	"context"
	"sort"
	"strings"

	"eventdirectory/internal/domain"
)

type attendeeDirectory struct {
	store domain.SnapshotStore
}

// NewAttendeeDirectory creates the visibility and ranking engine over the
// given snapshot store. The engine owns no data: it is a pure read-side
// transform from attendance rows, users, and a viewer to a disclosure view.
func NewAttendeeDirectory(store domain.SnapshotStore) domain.AttendeeDirectory {
	return &attendeeDirectory{store: store}
}

func (d *attendeeDirectory) ListVisibleAttendees(ctx context.Context, eventSlug string, viewer *domain.User, filters domain.AttendeeFilters) (*domain.AttendeePage, error) {
	snap, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[string]*domain.User, len(snap.Users))
	for _, u := range snap.Users {
		usersByID[u.ID] = u
	}

	rows := []*domain.Attendance{}
	for _, row := range snap.Attendances {
		if row.EventSlug == eventSlug {
			rows = append(rows, row)
		}
	}

	// Most recently updated first; user_id breaks timestamp ties so that the
	// order is total and limit truncation is deterministic.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].UpdatedAt != rows[j].UpdatedAt {
			return rows[i].UpdatedAt > rows[j].UpdatedAt
		}
		return rows[i].UserID > rows[j].UserID
	})

	company := strings.ToLower(strings.TrimSpace(filters.Company))
	title := strings.ToLower(strings.TrimSpace(filters.Title))

	visible := []domain.AttendeeRecord{}
	for _, row := range rows {
		if filters.State != "" && row.State != filters.State {
			continue
		}

		// Rows whose user no longer exists are skipped, not errored: directory
		// completeness is preferred over strict consistency on this read path.
		user, ok := usersByID[row.UserID]
		if !ok {
			continue
		}

		if !canSee(viewer, row) {
			continue
		}

		// Company/title filters run after the disclosure predicate, so they
		// only ever narrow an already-visible set and cannot probe hidden rows.
		if company != "" && !strings.Contains(strings.ToLower(user.Company), company) {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(user.Title), title) {
			continue
		}

		visible = append(visible, domain.AttendeeRecord{
			UserID:     user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Company:    user.Company,
			Title:      user.Title,
			State:      row.State,
			Visibility: row.Visibility,
			UpdatedAt:  row.UpdatedAt,
		})
	}

	limit := attendeeLimit(viewer)
	items := visible
	if len(items) > limit {
		items = items[:limit]
	}
	return &domain.AttendeePage{
		Items:        items,
		TotalVisible: len(visible),
		Limit:        limit,
	}, nil
}

// canSee is the disclosure predicate: the per-row rule deciding whether the
// viewer may receive an attendance row at all.
func canSee(viewer *domain.User, row *domain.Attendance) bool {
	if viewer.IsAdmin() {
		return true
	}
	switch row.Visibility {
	case domain.VisibilityPublic:
		return true
	case domain.VisibilityVerifiedOnly:
		return canViewVerifiedOnly(viewer)
	case domain.VisibilityPrivate:
		return viewer != nil && viewer.ID == row.UserID
	}
	return false
}

func canViewVerifiedOnly(viewer *domain.User) bool {
	if viewer == nil {
		return false
	}
	if viewer.Role == domain.RoleAdmin {
		return true
	}
	if viewer.VerifiedEmailDomain {
		return true
	}
	return viewer.HasActivePro()
}

// attendeeLimit is the tier limit: admins and active PRO subscribers get the
// larger page, everyone else (anonymous included) the free one.
func attendeeLimit(viewer *domain.User) int {
	if viewer.IsAdmin() || viewer.HasActivePro() {
		return domain.ProAttendeeLimit
	}
	return domain.FreeAttendeeLimit
}
