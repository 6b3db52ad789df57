package controllers

import (
	"log/slog"
	"net/http"

	"eventdirectory/internal/delivery/http/helpers"
	"eventdirectory/internal/delivery/http/middleware"
	"eventdirectory/internal/domain"
)

type AttendeeController struct {
	Logger    *slog.Logger
	Catalog   domain.EventCatalog
	Directory domain.AttendeeDirectory
}

func NewAttendeeController(logger *slog.Logger, catalog domain.EventCatalog, directory domain.AttendeeDirectory) *AttendeeController {
	return &AttendeeController{
		Logger:    logger,
		Catalog:   catalog,
		Directory: directory,
	}
}

// List godoc
// @Summary List visible attendees for an event
// @Description Returns the ordered, access-filtered, tier-limited attendee page for the current viewer. total_visible counts matches before the tier limit is applied.
// @Tags attendees
// @Produce json
// @Param slug path string true "Event slug"
// @Param company query string false "Substring filter on attendee company"
// @Param title query string false "Substring filter on attendee title"
// @Param state query string false "Exact attendance state filter (INTERESTED or ATTENDING)"
// @Success 200 {object} domain.AttendeePage
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug}/attendees [get]
func (c *AttendeeController) List(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if _, err := c.Catalog.Find(r.Context(), slug); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	viewer, _ := middleware.ViewerFromContext(r.Context())
	page, err := c.Directory.ListVisibleAttendees(r.Context(), slug, viewer, attendeeFiltersFromQuery(r))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}
