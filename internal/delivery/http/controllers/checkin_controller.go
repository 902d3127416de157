package controllers

import (
	"log/slog"
	"net/http"

	"youthministry/internal/delivery/http/helpers"
	"youthministry/internal/domain"
)

// CheckInRequest is the request body for POST /checkins.
type CheckInRequest struct {
	EventID   int64 `json:"event_id"`
	StudentID int64 `json:"student_id"`
}

// Validate implements Validator.
func (c CheckInRequest) Validate() []string {
	var errs []string
	if c.EventID <= 0 {
		errs = append(errs, "event_id must be a positive integer")
	}
	if c.StudentID <= 0 {
		errs = append(errs, "student_id must be a positive integer")
	}
	return errs
}

// CheckInSuccessResponse is the success response envelope for POST /checkins (201).
type CheckInSuccessResponse struct {
	Data  *domain.CheckinReceipt `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListCheckinsSuccessResponse is the success response envelope for GET /events/{eventID}/checkins.
type ListCheckinsSuccessResponse struct {
	Data  *domain.CheckinSnapshot `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ClearCheckinsResponse is the response body for DELETE /events/{eventID}/checkins.
type ClearCheckinsResponse struct {
	EventID int64 `json:"event_id"`
	Cleared bool  `json:"cleared"`
}

// ClearCheckinsSuccessResponse is the success response envelope for DELETE /events/{eventID}/checkins.
type ClearCheckinsSuccessResponse struct {
	Data  ClearCheckinsResponse `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// PersistAttendanceSuccessResponse is the success response envelope for POST /events/{eventID}/attendance.
type PersistAttendanceSuccessResponse struct {
	Data  *domain.ReconcileResult `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type CheckinController struct {
	Logger     *slog.Logger
	Service    domain.CheckinService
	Reconciler domain.Reconciler
}

func NewCheckinController(logger *slog.Logger, svc domain.CheckinService, reconciler domain.Reconciler) *CheckinController {
	return &CheckinController{
		Logger:     logger,
		Service:    svc,
		Reconciler: reconciler,
	}
}

// CheckIn godoc
// @Summary Check a student in to an event
// @Description Adds the student to the event's live check-in set. Checking in twice is a no-op. Event and student ids are not looked up.
// @Tags checkins
// @Accept json
// @Produce json
// @Param checkin body CheckInRequest true "Event and student ids"
// @Success 201 {object} controllers.CheckInSuccessResponse "data.status is checked_in"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /checkins [post]
func (c *CheckinController) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	receipt, err := c.Service.CheckIn(r.Context(), req.EventID, req.StudentID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, receipt)
}

// ListCheckins godoc
// @Summary List checked-in students
// @Description Returns the ids currently in the event's check-in set, in no particular order. An unknown event yields an empty list.
// @Tags checkins
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.ListCheckinsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /events/{eventID}/checkins [get]
func (c *CheckinController) ListCheckins(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	snap, err := c.Service.ListCheckedIn(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, snap)
}

// ClearCheckins godoc
// @Summary Clear an event's check-in set
// @Description Empties the set without writing attendance. Use it when attendance was persisted but the response reported cleared=false. Idempotent.
// @Tags checkins
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.ClearCheckinsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /events/{eventID}/checkins [delete]
func (c *CheckinController) ClearCheckins(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.ClearCheckins(r.Context(), eventID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ClearCheckinsResponse{EventID: eventID, Cleared: true})
}

// PersistAttendance godoc
// @Summary Persist attendance from check-ins
// @Description Writes one attendance record per checked-in student in a single transaction, then removes them from the set. On failure nothing is written and the set is kept, so the call can be retried. If cleared is false the records were saved but the set was not emptied: clear it with DELETE /events/{eventID}/checkins instead of calling this again.
// @Tags attendance
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.PersistAttendanceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/attendance [post]
func (c *CheckinController) PersistAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	result, err := c.Reconciler.Reconcile(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
