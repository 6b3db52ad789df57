package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventdirectory/internal/delivery/http/helpers"
	"eventdirectory/internal/domain"
)

type contextKey string

const viewerKey contextKey = "viewer"

// SetViewer returns a context with the viewer set. Used by ResolveViewer and
// by tests.
func SetViewer(ctx context.Context, viewer *domain.User) context.Context {
	return context.WithValue(ctx, viewerKey, viewer)
}

// ViewerFromContext returns the resolved viewer from the context. A nil viewer
// with ok=true means the request is anonymous but passed through ResolveViewer.
func ViewerFromContext(ctx context.Context) (*domain.User, bool) {
	viewer, ok := ctx.Value(viewerKey).(*domain.User)
	return viewer, ok
}

// ResolveViewer resolves an optional Bearer token into the current viewer and
// stores it in the request context. Requests without a token, with a bad
// token, or whose user no longer exists proceed as anonymous; per-route
// wrappers decide whether anonymous is acceptable.
func ResolveViewer(verifier domain.TokenVerifier, users domain.UserDirectory, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var viewer *domain.User

			auth := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if strings.HasPrefix(auth, prefix) {
				token := strings.TrimSpace(auth[len(prefix):])
				if userID, err := verifier.Verify(token); err == nil {
					user, err := users.GetByID(r.Context(), userID)
					if err == nil {
						viewer = user
					} else {
						logger.DebugContext(r.Context(), "token subject not found", "user_id", userID)
					}
				}
			}

			next.ServeHTTP(w, r.WithContext(SetViewer(r.Context(), viewer)))
		})
	}
}

// RequireViewer wraps a handler that needs an authenticated viewer, responding
// 401 when the request is anonymous.
func RequireViewer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := ViewerFromContext(r.Context())
		if viewer == nil {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
			return
		}
		next(w, r)
	}
}

// RequireAdmin wraps a handler that needs an ADMIN viewer, responding 401 for
// anonymous requests and 403 for non-admin users.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := ViewerFromContext(r.Context())
		if viewer == nil {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
			return
		}
		if viewer.Role != domain.RoleAdmin {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "admin access required")
			return
		}
		next(w, r)
	}
}
