package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"youthministry/internal/delivery/http/helpers"
	"youthministry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"event_type_id":1,"type":"Bible study","notes":"bring snacks"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "missing type",
			body:           `{"event_type_id":1}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "type is required",
		},
		{
			name:           "missing event type id",
			body:           `{"type":"Retreat"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "event_type_id must be a positive integer",
		},
		{
			name:           "unknown event type",
			body:           `{"event_type_id":99,"type":"Retreat"}`,
			fakeErr:        domain.ValidationError("event_type_id 99 does not exist"),
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "event_type_id 99 does not exist",
		},
		{
			name:           "database down",
			body:           `{"event_type_id":1,"type":"Retreat"}`,
			fakeErr:        domain.NewStorageError("create event", errors.New("dial tcp")),
			wantStatus:     http.StatusServiceUnavailable,
			wantBodySubstr: "storage temporarily unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{err: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var event domain.Event
			envelope := decodeEnvelope(t, rr, &event)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.Equal(t, int64(1), event.ID)
				assert.Equal(t, "Bible study", event.Type)
				require.NotNil(t, event.Notes)
				assert.Equal(t, "bring snacks", *event.Notes)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
		})
	}
}

func TestEventController_ListEvents(t *testing.T) {
	fake := &fakeEventService{events: map[int64]*domain.Event{
		1: {ID: 1, EventTypeID: 1, Type: "Bible study"},
		2: {ID: 2, EventTypeID: 2, Type: "Retreat"},
	}}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/events?page=1&page_size=1", nil)
	rr := httptest.NewRecorder()

	ctrl.ListEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got ListEventsResponse
	decodeEnvelope(t, rr, &got)
	assert.Len(t, got.Items, 2)
	assert.Equal(t, helpers.PaginationMeta{Page: 1, PageSize: 1, Total: 2, TotalPages: 2, HasNext: true}, got.Pagination)
	assert.Equal(t, domain.PaginationParams{Page: 1, PageSize: 1}, fake.lastParams)
}

func TestEventController_GetEvent(t *testing.T) {
	fake := &fakeEventService{events: map[int64]*domain.Event{3: {ID: 3, EventTypeID: 1, Type: "Bible study"}}}
	ctrl := NewEventController(testLogger, fake)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events/3", nil)
		req.SetPathValue("eventID", "3")
		rr := httptest.NewRecorder()

		ctrl.GetEvent(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var event domain.Event
		decodeEnvelope(t, rr, &event)
		assert.Equal(t, "Bible study", event.Type)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/events/4", nil)
		req.SetPathValue("eventID", "4")
		rr := httptest.NewRecorder()

		ctrl.GetEvent(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr, nil)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
		assert.Equal(t, "event not found", envelope.Error.Message)
	})
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name       string
		pathID     string
		body       string
		wantStatus int
		wantType   string
	}{
		{name: "partial update", pathID: "3", body: `{"type":"Retreat"}`, wantStatus: http.StatusOK, wantType: "Retreat"},
		{name: "empty update", pathID: "3", body: `{}`, wantStatus: http.StatusOK, wantType: "Bible study"},
		{name: "blank type", pathID: "3", body: `{"type":"  "}`, wantStatus: http.StatusBadRequest},
		{name: "missing event", pathID: "9", body: `{"type":"Retreat"}`, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{events: map[int64]*domain.Event{3: {ID: 3, EventTypeID: 1, Type: "Bible study"}}}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/events/"+tt.pathID, bytes.NewBufferString(tt.body))
			req.SetPathValue("eventID", tt.pathID)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var event domain.Event
				decodeEnvelope(t, rr, &event)
				assert.Equal(t, tt.wantType, event.Type)
			}
		})
	}
}

func TestEventController_DeleteEvent(t *testing.T) {
	fake := &fakeEventService{}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodDelete, "/events/5", nil)
	req.SetPathValue("eventID", "5")
	rr := httptest.NewRecorder()

	ctrl.DeleteEvent(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, []int64{5}, fake.deletedIDs)
}

func TestEventController_GetEventDetails(t *testing.T) {
	notes := "bring snacks"
	aggregate := &domain.EventAggregate{
		Event:             &domain.Event{ID: 3, EventTypeID: 1, Type: "Bible study", Notes: &notes},
		LiveAttendees:     []int64{1, 2},
		LiveAttendeeCount: 2,
		MeetingNotes:      []string{"b", "a"},
		MeetingNoteCount:  2,
	}

	tests := []struct {
		name       string
		pathID     string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "found", pathID: "3", wantStatus: http.StatusOK},
		{name: "not found", pathID: "4", wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "invalid id", pathID: "x", wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{
			name:       "store unavailable",
			pathID:     "3",
			fakeErr:    domain.NewStorageError("list check-ins", errors.New("i/o timeout")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   helpers.ErrCodeStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{aggregate: aggregate, err: tt.fakeErr}
			ctrl := NewEventController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/"+tt.pathID+"/details", nil)
			req.SetPathValue("eventID", tt.pathID)
			rr := httptest.NewRecorder()

			ctrl.GetEventDetails(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var got domain.EventAggregate
			envelope := decodeEnvelope(t, rr, &got)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				assert.Equal(t, *aggregate.Event, *got.Event)
				assert.Equal(t, []int64{1, 2}, got.LiveAttendees)
				assert.Equal(t, 2, got.LiveAttendeeCount)
				assert.Equal(t, []string{"b", "a"}, got.MeetingNotes)
				assert.Equal(t, 2, got.MeetingNoteCount)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantCode, envelope.Error.Code)
		})
	}
}

func TestEventController_ListAttendance(t *testing.T) {
	fake := &fakeEventService{attendance: []*domain.AttendanceRecord{
		{ID: 1, EventID: 7, StudentID: 101, Date: "2025-01-01", Time: "10:00:00"},
	}}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/events/7/attendance", nil)
	req.SetPathValue("eventID", "7")
	rr := httptest.NewRecorder()

	ctrl.ListAttendance(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []*domain.AttendanceRecord
	decodeEnvelope(t, rr, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-01-01", got[0].Date)
	assert.Equal(t, "10:00:00", got[0].Time)
	assert.Equal(t, int64(7), fake.lastEventID)
}

func TestEventController_AddMeetingNote(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodPost, "/events/3/notes", bytes.NewBufferString(`{"content":"great turnout","author":" Sam ","tags":["summer"]}`))
		req.SetPathValue("eventID", "3")
		rr := httptest.NewRecorder()

		ctrl.AddMeetingNote(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, fake.lastNote)
		assert.Equal(t, int64(3), fake.lastNote.EventID)
		assert.Equal(t, "Sam", fake.lastNote.Author)
		assert.Equal(t, []string{"summer"}, fake.lastNote.Tags)
		var note domain.MeetingNote
		decodeEnvelope(t, rr, &note)
		assert.Equal(t, "meeting_notes:n1", note.ID)
	})

	t.Run("empty content", func(t *testing.T) {
		fake := &fakeEventService{}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodPost, "/events/3/notes", bytes.NewBufferString(`{"content":" "}`))
		req.SetPathValue("eventID", "3")
		rr := httptest.NewRecorder()

		ctrl.AddMeetingNote(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, fake.lastNote)
	})

	t.Run("event missing", func(t *testing.T) {
		fake := &fakeEventService{err: domain.ErrNotFound}
		ctrl := NewEventController(testLogger, fake)
		req := httptest.NewRequest(http.MethodPost, "/events/3/notes", bytes.NewBufferString(`{"content":"hi"}`))
		req.SetPathValue("eventID", "3")
		rr := httptest.NewRecorder()

		ctrl.AddMeetingNote(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestEventController_ListMeetingNotes(t *testing.T) {
	created := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	fake := &fakeEventService{notes: []*domain.MeetingNote{
		{ID: "meeting_notes:b", EventID: 3, Content: "b", CreatedAt: created.Add(time.Hour)},
		{ID: "meeting_notes:a", EventID: 3, Content: "a", CreatedAt: created},
	}}
	ctrl := NewEventController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/events/3/notes", nil)
	req.SetPathValue("eventID", "3")
	rr := httptest.NewRecorder()

	ctrl.ListMeetingNotes(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []*domain.MeetingNote
	decodeEnvelope(t, rr, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Content)
	assert.Equal(t, "a", got[1].Content)
}

func TestEventController_EventTypes(t *testing.T) {
	fake := &fakeEventService{}
	ctrl := NewEventController(testLogger, fake)

	req := httptest.NewRequest(http.MethodPost, "/event-types", bytes.NewBufferString(`{"name":"Retreat"}`))
	rr := httptest.NewRecorder()
	ctrl.CreateEventType(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/event-types", bytes.NewBufferString(`{"name":""}`))
	rr = httptest.NewRecorder()
	ctrl.CreateEventType(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/event-types", nil)
	rr = httptest.NewRecorder()
	ctrl.ListEventTypes(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var got []*domain.EventType
	decodeEnvelope(t, rr, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Retreat", got[0].Name)
}
