package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"youthministry/internal/delivery/http/helpers"
	"youthministry/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	EventTypeID int64   `json:"event_type_id"`
	Type        string  `json:"type"`
	Notes       *string `json:"notes"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.EventTypeID <= 0 {
		errs = append(errs, "event_type_id must be a positive integer")
	}
	if strings.TrimSpace(c.Type) == "" {
		errs = append(errs, "type is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	EventTypeID *int64  `json:"event_type_id"`
	Type        *string `json:"type"`
	Notes       *string `json:"notes"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.EventTypeID != nil && *u.EventTypeID <= 0 {
		errs = append(errs, "event_type_id must be a positive integer")
	}
	if u.Type != nil && strings.TrimSpace(*u.Type) == "" {
		errs = append(errs, "type cannot be empty")
	}
	return errs
}

// EventSuccessResponse is the success response envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Items      []*domain.Event        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events.
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// EventDetailsSuccessResponse is the success response envelope for GET /events/{eventID}/details.
type EventDetailsSuccessResponse struct {
	Data  *domain.EventAggregate `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ListAttendanceSuccessResponse is the success response envelope for GET /events/{eventID}/attendance.
type ListAttendanceSuccessResponse struct {
	Data  []*domain.AttendanceRecord `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// CreateMeetingNoteRequest is the request body for POST /events/{eventID}/notes.
type CreateMeetingNoteRequest struct {
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// Validate implements Validator.
func (c CreateMeetingNoteRequest) Validate() []string {
	if strings.TrimSpace(c.Content) == "" {
		return []string{"content is required"}
	}
	return nil
}

// MeetingNoteSuccessResponse is the success response envelope for POST /events/{eventID}/notes (201).
type MeetingNoteSuccessResponse struct {
	Data  *domain.MeetingNote `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListMeetingNotesSuccessResponse is the success response envelope for GET /events/{eventID}/notes.
type ListMeetingNotesSuccessResponse struct {
	Data  []*domain.MeetingNote `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// CreateEventTypeRequest is the request body for POST /event-types.
type CreateEventTypeRequest struct {
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CreateEventTypeRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// EventTypeSuccessResponse is the success response envelope for POST /event-types (201).
type EventTypeSuccessResponse struct {
	Data  *domain.EventType `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventTypesSuccessResponse is the success response envelope for GET /event-types.
type ListEventTypesSuccessResponse struct {
	Data  []*domain.EventType `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable (also returned for an unknown event_type_id)"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := domain.NewEvent(req.EventTypeID, req.Type, req.Notes)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, capped at 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params, ok := helpers.ParsePagination(w, r)
	if !ok {
		return
	}
	page, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	meta := helpers.PageMeta(params, page)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Items: page.Items, Pagination: meta})
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update; omitted fields are unchanged.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.EventUpdate{EventTypeID: req.EventTypeID, Type: req.Type, Notes: req.Notes}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, update)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and its attendance records, and clears its check-in set.
// @Tags events
// @Param eventID path int true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetEventDetails godoc
// @Summary Get the event dashboard view
// @Description Event attributes, students currently checked in and meeting notes (most recent first). The parts are read independently and are not a consistent snapshot.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventDetailsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /events/{eventID}/details [get]
func (c *EventController) GetEventDetails(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	agg, err := c.Service.GetEventDetails(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, agg)
}

// ListAttendance godoc
// @Summary List persisted attendance for an event
// @Tags attendance
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.ListAttendanceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/attendance [get]
func (c *EventController) ListAttendance(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	records, err := c.Service.ListAttendance(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}

// AddMeetingNote godoc
// @Summary Add a meeting note to an event
// @Tags notes
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param note body CreateMeetingNoteRequest true "Note"
// @Success 201 {object} controllers.MeetingNoteSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /events/{eventID}/notes [post]
func (c *EventController) AddMeetingNote(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	var req CreateMeetingNoteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	note := &domain.MeetingNote{
		EventID: eventID,
		Content: req.Content,
		Author:  strings.TrimSpace(req.Author),
		Tags:    req.Tags,
	}
	if err := c.Service.AddMeetingNote(r.Context(), note); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, note)
}

// ListMeetingNotes godoc
// @Summary List an event's meeting notes
// @Description Most recent first.
// @Tags notes
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.ListMeetingNotesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /events/{eventID}/notes [get]
func (c *EventController) ListMeetingNotes(w http.ResponseWriter, r *http.Request) {
	eventID, ok := helpers.PathID(w, r, "eventID")
	if !ok {
		return
	}
	notes, err := c.Service.ListMeetingNotes(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, notes)
}

// CreateEventType godoc
// @Summary Create an event type
// @Tags event-types
// @Accept json
// @Produce json
// @Param eventType body CreateEventTypeRequest true "Event type"
// @Success 201 {object} controllers.EventTypeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable (also returned for a duplicate name)"
// @Router /event-types [post]
func (c *EventController) CreateEventType(w http.ResponseWriter, r *http.Request) {
	var req CreateEventTypeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	et := &domain.EventType{Name: req.Name}
	if err := c.Service.CreateEventType(r.Context(), et); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event type not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, et)
}

// ListEventTypes godoc
// @Summary List event types
// @Tags event-types
// @Produce json
// @Success 200 {object} controllers.ListEventTypesSuccessResponse
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /event-types [get]
func (c *EventController) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	types, err := c.Service.ListEventTypes(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event type not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, types)
}
