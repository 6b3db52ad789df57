package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventdirectory/internal/delivery/http/controllers"
	"eventdirectory/internal/delivery/http/middleware"
	"eventdirectory/internal/domain"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	Users          domain.UserDirectory
	AllowedOrigins []string

	Auth       *controllers.AuthController
	Events     *controllers.EventController
	Attendees  *controllers.AttendeeController
	Attendance *controllers.AttendanceController
}

// NewRouter initializes the HTTP router with all application routes. Every
// route runs behind viewer resolution, so handlers read the viewer (possibly
// nil) from the request context; RequireViewer/RequireAdmin gate the
// authenticated and admin surfaces.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.HandleFunc("GET /me", middleware.RequireViewer(deps.Auth.Me))

	// Public directory
	mux.HandleFunc("GET /events", deps.Events.Search)
	mux.HandleFunc("GET /events/{slug}", deps.Events.Detail)
	mux.HandleFunc("GET /events/{slug}/attendees", deps.Attendees.List)

	// Attendance (own row only)
	mux.HandleFunc("PUT /events/{slug}/attendance", middleware.RequireViewer(deps.Attendance.Set))
	mux.HandleFunc("GET /events/{slug}/attendance", middleware.RequireViewer(deps.Attendance.GetMine))

	// Admin catalog management
	mux.HandleFunc("POST /admin/events", middleware.RequireAdmin(deps.Events.Create))
	mux.HandleFunc("PUT /admin/events/{slug}", middleware.RequireAdmin(deps.Events.Update))
	mux.HandleFunc("DELETE /admin/events/{slug}", middleware.RequireAdmin(deps.Events.Delete))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	resolve := middleware.ResolveViewer(deps.Verifier, deps.Users, deps.Logger)
	handler := resolve(mux)
	handler = middleware.Logging(deps.Logger, handler)
	if len(deps.AllowedOrigins) > 0 {
		handler = middleware.CORS(deps.AllowedOrigins, handler)
	}
	return handler
}
