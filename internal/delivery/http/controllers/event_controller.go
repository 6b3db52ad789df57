package controllers

import (
	"log/slog"
	"net/http"

	"eventdirectory/internal/delivery/http/helpers"
	"eventdirectory/internal/delivery/http/middleware"
	"eventdirectory/internal/domain"
)

type EventController struct {
	Logger    *slog.Logger
	Catalog   domain.EventCatalog
	Directory domain.AttendeeDirectory
}

func NewEventController(logger *slog.Logger, catalog domain.EventCatalog, directory domain.AttendeeDirectory) *EventController {
	return &EventController{
		Logger:    logger,
		Catalog:   catalog,
		Directory: directory,
	}
}

// SearchEventsResponse is the success payload for GET /events.
type SearchEventsResponse struct {
	Items []*domain.Event `json:"items"`
}

// Search godoc
// @Summary Search events
// @Description Case-insensitive substring search: query matches name or description, city matches city. Results sorted by (start_at, slug).
// @Tags events
// @Produce json
// @Param query query string false "Substring to match against name or description"
// @Param city query string false "Substring to match against city"
// @Success 200 {object} controllers.SearchEventsResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := c.Catalog.Search(r.Context(), q.Get("query"), q.Get("city"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchEventsResponse{Items: events})
}

// EventDetailResponse is the success payload for GET /events/{slug}: the event
// plus its attendee page as seen by the current viewer.
type EventDetailResponse struct {
	Event     *domain.Event        `json:"event"`
	Attendees *domain.AttendeePage `json:"attendees"`
}

// Detail godoc
// @Summary Get an event with its visible attendees
// @Description Returns the event and the attendee page computed for the current viewer (anonymous when no token is sent).
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Param company query string false "Substring filter on attendee company"
// @Param title query string false "Substring filter on attendee title"
// @Param state query string false "Exact attendance state filter (INTERESTED or ATTENDING)"
// @Success 200 {object} controllers.EventDetailResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{slug} [get]
func (c *EventController) Detail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	event, err := c.Catalog.Find(r.Context(), slug)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}

	viewer, _ := middleware.ViewerFromContext(r.Context())
	page, err := c.Directory.ListVisibleAttendees(r.Context(), slug, viewer, attendeeFiltersFromQuery(r))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventDetailResponse{Event: event, Attendees: page})
}

// Create godoc
// @Summary Create an event
// @Description Creates an event. The slug is normalized from the slug field or, when empty, from the name. Tags are comma-separated.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.EventDraft true "Event payload"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var draft domain.EventDraft
	if !helpers.DecodeAndValidate(w, r, &draft) {
		return
	}
	event, err := c.Catalog.Create(r.Context(), draft)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Description Partial update: absent fields keep their stored values. A changed slug renames the event and cascades to attendance rows.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Param body body domain.EventPatch true "Fields to change"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{slug} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	var patch domain.EventPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	event, err := c.Catalog.Update(r.Context(), slug, patch)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes the event and cascades to its attendance and auxiliary rows.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{slug} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if err := c.Catalog.Delete(r.Context(), slug); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": slug})
}

func attendeeFiltersFromQuery(r *http.Request) domain.AttendeeFilters {
	q := r.URL.Query()
	return domain.AttendeeFilters{
		Company: q.Get("company"),
		Title:   q.Get("title"),
		State:   domain.AttendanceState(q.Get("state")),
	}
}
