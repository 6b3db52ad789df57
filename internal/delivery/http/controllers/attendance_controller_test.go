package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventdirectory/internal/delivery/http/middleware"
	"eventdirectory/internal/domain"
)

func TestAttendanceController_Set_Unauthorized(t *testing.T) {
	ctrl := NewAttendanceController(testLogger(), &mockLedger{})

	req := httptest.NewRequest(http.MethodPut, "/events/conf/attendance", strings.NewReader(`{}`))
	req.SetPathValue("slug", "conf")
	req = req.WithContext(middleware.SetViewer(req.Context(), nil))
	w := httptest.NewRecorder()

	ctrl.Set(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAttendanceController_Set_DefaultsApplied(t *testing.T) {
	ctrl := NewAttendanceController(testLogger(), &mockLedger{})

	viewer := &domain.User{ID: "u1"}
	req := httptest.NewRequest(http.MethodPut, "/events/conf/attendance", strings.NewReader(`{}`))
	req.SetPathValue("slug", "conf")
	req = req.WithContext(middleware.SetViewer(req.Context(), viewer))
	w := httptest.NewRecorder()

	ctrl.Set(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}
	var resp struct {
		Data *domain.Attendance `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.State != domain.StateInterested || resp.Data.Visibility != domain.VisibilityPublic {
		t.Fatalf("defaults not applied: %+v", resp.Data)
	}
	if resp.Data.UserID != "u1" {
		t.Fatalf("expected viewer's own row, got %q", resp.Data.UserID)
	}
}

func TestAttendanceController_Set_ValidationError(t *testing.T) {
	ledger := &mockLedger{err: domain.NewValidationError("invalid attendance state")}
	ctrl := NewAttendanceController(testLogger(), ledger)

	req := httptest.NewRequest(http.MethodPut, "/events/conf/attendance", strings.NewReader(`{"state":"MAYBE"}`))
	req.SetPathValue("slug", "conf")
	req = req.WithContext(middleware.SetViewer(req.Context(), &domain.User{ID: "u1"}))
	w := httptest.NewRecorder()

	ctrl.Set(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestAttendanceController_GetMine(t *testing.T) {
	row := &domain.Attendance{EventSlug: "conf", UserID: "u1", State: domain.StateAttending, Visibility: domain.VisibilityPrivate, UpdatedAt: "2025-01-01T00:00:00Z"}
	ctrl := NewAttendanceController(testLogger(), &mockLedger{row: row})

	req := httptest.NewRequest(http.MethodGet, "/events/conf/attendance", nil)
	req.SetPathValue("slug", "conf")
	req = req.WithContext(middleware.SetViewer(req.Context(), &domain.User{ID: "u1"}))
	w := httptest.NewRecorder()

	ctrl.GetMine(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAttendanceController_GetMine_Absent(t *testing.T) {
	ctrl := NewAttendanceController(testLogger(), &mockLedger{})

	req := httptest.NewRequest(http.MethodGet, "/events/conf/attendance", nil)
	req.SetPathValue("slug", "conf")
	req = req.WithContext(middleware.SetViewer(req.Context(), &domain.User{ID: "u1"}))
	w := httptest.NewRecorder()

	ctrl.GetMine(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
