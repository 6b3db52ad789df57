package controllers

import (
	"context"
	"io"
	"log/slog"

	"eventdirectory/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockCatalog struct {
	events  map[string]*domain.Event
	created *domain.Event
	err     error
}

func (m *mockCatalog) Create(ctx context.Context, draft domain.EventDraft) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.created, nil
}

func (m *mockCatalog) Update(ctx context.Context, slug string, patch domain.EventPatch) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockCatalog) Delete(ctx context.Context, slug string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.events[slug]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (m *mockCatalog) Find(ctx context.Context, slug string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockCatalog) Search(ctx context.Context, query, city string) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.Event{}
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

type mockDirectory struct {
	page       *domain.AttendeePage
	gotViewer  *domain.User
	gotFilters domain.AttendeeFilters
	err        error
}

func (m *mockDirectory) ListVisibleAttendees(ctx context.Context, eventSlug string, viewer *domain.User, filters domain.AttendeeFilters) (*domain.AttendeePage, error) {
	m.gotViewer = viewer
	m.gotFilters = filters
	if m.err != nil {
		return nil, m.err
	}
	return m.page, nil
}

type mockLedger struct {
	row *domain.Attendance
	err error
}

func (m *mockLedger) Upsert(ctx context.Context, eventSlug, userID string, state domain.AttendanceState, visibility domain.AttendanceVisibility) (*domain.Attendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Attendance{
		EventSlug:  eventSlug,
		UserID:     userID,
		State:      state,
		Visibility: visibility,
		UpdatedAt:  "2025-01-01T00:00:00Z",
	}, nil
}

func (m *mockLedger) GetForUser(ctx context.Context, eventSlug, userID string) (*domain.Attendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.row == nil {
		return nil, domain.ErrNotFound
	}
	return m.row, nil
}

type mockAuthService struct {
	token string
	user  *domain.User
	err   error
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if m.err != nil {
		return "", nil, m.err
	}
	return m.token, m.user, nil
}
