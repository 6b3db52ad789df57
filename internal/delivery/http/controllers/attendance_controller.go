package controllers

import (
	"log/slog"
	"net/http"

	"eventdirectory/internal/delivery/http/helpers"
	"eventdirectory/internal/delivery/http/middleware"
	"eventdirectory/internal/domain"
)

type AttendanceController struct {
	Logger *slog.Logger
	Ledger domain.AttendanceLedger
}

func NewAttendanceController(logger *slog.Logger, ledger domain.AttendanceLedger) *AttendanceController {
	return &AttendanceController{
		Logger: logger,
		Ledger: ledger,
	}
}

// SetAttendanceRequest is the request body for PUT /events/{slug}/attendance.
// Missing fields default to INTERESTED / PUBLIC.
type SetAttendanceRequest struct {
	State      domain.AttendanceState      `json:"state"`
	Visibility domain.AttendanceVisibility `json:"visibility"`
}

// Validate implements helpers.Validator.
func (r *SetAttendanceRequest) Validate() []string {
	if r.State == "" {
		r.State = domain.StateInterested
	}
	if r.Visibility == "" {
		r.Visibility = domain.VisibilityPublic
	}
	return nil
}

// Set godoc
// @Summary Set the viewer's attendance for an event
// @Description Upserts the authenticated viewer's attendance row: one row per (event, user), overwritten in place on repeat calls.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Param body body controllers.SetAttendanceRequest true "State and visibility"
// @Success 200 {object} domain.Attendance
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{slug}/attendance [put]
func (c *AttendanceController) Set(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.ViewerFromContext(r.Context())
	if viewer == nil {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "login required")
		return
	}

	var req SetAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	row, err := c.Ledger.Upsert(r.Context(), r.PathValue("slug"), viewer.ID, req.State, req.Visibility)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, row)
}

// GetMine godoc
// @Summary Get the viewer's attendance for an event
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {object} domain.Attendance
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{slug}/attendance [get]
func (c *AttendanceController) GetMine(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.ViewerFromContext(r.Context())
	if viewer == nil {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "login required")
		return
	}

	row, err := c.Ledger.GetForUser(r.Context(), r.PathValue("slug"), viewer.ID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, row)
}
