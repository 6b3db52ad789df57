package services

import (
	"context"
	"log/slog"
	"time"

	"eventdirectory/internal/domain"
)

type attendanceLedger struct {
	store  domain.SnapshotStore
	emails domain.EmailService
	logger *slog.Logger
}

// NewAttendanceLedger creates an AttendanceLedger backed by the given snapshot
// store. emails may be nil; when set, a confirmation is sent best-effort
// whenever a new attendance row is created.
func NewAttendanceLedger(store domain.SnapshotStore, emails domain.EmailService, logger *slog.Logger) domain.AttendanceLedger {
	return &attendanceLedger{store: store, emails: emails, logger: logger}
}

// NowISO returns the current UTC time as an ISO-8601 string with seconds
// precision and a Z suffix, the format stored in attendance rows.
func NowISO() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

func (l *attendanceLedger) Upsert(ctx context.Context, eventSlug, userID string, state domain.AttendanceState, visibility domain.AttendanceVisibility) (*domain.Attendance, error) {
	switch state {
	case domain.StateInterested, domain.StateAttending:
	default:
		return nil, domain.NewValidationError("invalid attendance state")
	}
	switch visibility {
	case domain.VisibilityPublic, domain.VisibilityVerifiedOnly, domain.VisibilityPrivate:
	default:
		return nil, domain.NewValidationError("invalid attendance visibility")
	}

	var (
		row     *domain.Attendance
		created bool
		email   *domain.AttendanceEmailData
	)
	err := l.store.Update(ctx, func(snap *domain.Snapshot) error {
		event := snap.EventBySlug(eventSlug)
		if event == nil {
			return domain.ErrNotFound
		}

		now := NowISO()
		for _, existing := range snap.Attendances {
			if existing.EventSlug == eventSlug && existing.UserID == userID {
				existing.State = state
				existing.Visibility = visibility
				existing.UpdatedAt = now
				row = existing
				return nil
			}
		}

		row = &domain.Attendance{
			EventSlug:  eventSlug,
			UserID:     userID,
			State:      state,
			Visibility: visibility,
			UpdatedAt:  now,
		}
		snap.Attendances = append(snap.Attendances, row)
		created = true

		for _, user := range snap.Users {
			if user.ID == userID {
				email = &domain.AttendanceEmailData{
					Email:     user.Email,
					Name:      user.Name,
					EventName: event.Name,
					State:     state,
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Confirmation is best-effort: a mail failure never fails the upsert.
	if created && l.emails != nil && email != nil {
		if err := l.emails.SendAttendanceConfirmation(ctx, email); err != nil {
			l.logger.WarnContext(ctx, "attendance confirmation email failed",
				"event_slug", eventSlug, "user_id", userID, "err", err)
		}
	}
	return row, nil
}

func (l *attendanceLedger) GetForUser(ctx context.Context, eventSlug, userID string) (*domain.Attendance, error) {
	snap, err := l.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range snap.Attendances {
		if row.EventSlug == eventSlug && row.UserID == userID {
			return row, nil
		}
	}
	return nil, domain.ErrNotFound
}
