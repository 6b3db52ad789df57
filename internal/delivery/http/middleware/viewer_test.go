package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventdirectory/internal/domain"
)

type fakeVerifier struct {
	userID string
	err    error
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.userID, nil
}

type fakeUsers struct {
	users map[string]*domain.User
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func resolvedViewer(t *testing.T, verifier domain.TokenVerifier, users domain.UserDirectory, authorization string) *domain.User {
	t.Helper()

	var got *domain.User
	var ok bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = ViewerFromContext(r.Context())
	})
	handler := ResolveViewer(verifier, users, discardLogger())(inner)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("viewer was not stored in the request context")
	}
	return got
}

func TestResolveViewer(t *testing.T) {
	users := &fakeUsers{users: map[string]*domain.User{
		"u1": {ID: "u1", Email: "ada@example.com"},
	}}

	t.Run("valid token", func(t *testing.T) {
		viewer := resolvedViewer(t, &fakeVerifier{userID: "u1"}, users, "Bearer good-token")
		if viewer == nil || viewer.ID != "u1" {
			t.Fatalf("expected resolved viewer, got %+v", viewer)
		}
	})

	t.Run("no token is anonymous", func(t *testing.T) {
		viewer := resolvedViewer(t, &fakeVerifier{userID: "u1"}, users, "")
		if viewer != nil {
			t.Fatalf("expected anonymous viewer, got %+v", viewer)
		}
	})

	t.Run("bad token is anonymous", func(t *testing.T) {
		viewer := resolvedViewer(t, &fakeVerifier{err: errors.New("bad signature")}, users, "Bearer tampered")
		if viewer != nil {
			t.Fatalf("expected anonymous viewer, got %+v", viewer)
		}
	})

	t.Run("deleted user is anonymous", func(t *testing.T) {
		viewer := resolvedViewer(t, &fakeVerifier{userID: "gone"}, users, "Bearer stale-token")
		if viewer != nil {
			t.Fatalf("expected anonymous viewer, got %+v", viewer)
		}
	})
}

func TestRequireViewer(t *testing.T) {
	handler := RequireViewer(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(SetViewer(req.Context(), nil))
	w := httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req = req.WithContext(SetViewer(req.Context(), &domain.User{ID: "u1"}))
	w = httptest.NewRecorder()
	handler(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		viewer     *domain.User
		wantStatus int
	}{
		{name: "anonymous", viewer: nil, wantStatus: http.StatusUnauthorized},
		{name: "regular user", viewer: &domain.User{ID: "u1", Role: domain.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "admin", viewer: &domain.User{ID: "a1", Role: domain.RoleAdmin}, wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/events", nil)
			req = req.WithContext(SetViewer(req.Context(), tt.viewer))
			w := httptest.NewRecorder()
			handler(w, req)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
