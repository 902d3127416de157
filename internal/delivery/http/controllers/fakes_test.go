package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"youthministry/internal/delivery/http/helpers"
	"youthministry/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// decodeEnvelope decodes the response envelope and, when data is non-nil, unmarshals
// the envelope's data into it.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	if data != nil && envelope.Data != nil {
		raw, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, data))
	}
	return envelope
}

// fakeCheckinService implements domain.CheckinService for handler tests.
type fakeCheckinService struct {
	err           error
	members       map[int64][]int64
	lastEventID   int64
	lastStudentID int64
	cleared       []int64
}

func (f *fakeCheckinService) CheckIn(ctx context.Context, eventID, studentID int64) (*domain.CheckinReceipt, error) {
	f.lastEventID, f.lastStudentID = eventID, studentID
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CheckinReceipt{EventID: eventID, StudentID: studentID, Status: domain.CheckinStatusCheckedIn}, nil
}

func (f *fakeCheckinService) ListCheckedIn(ctx context.Context, eventID int64) (*domain.CheckinSnapshot, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	ids := f.members[eventID]
	if ids == nil {
		ids = []int64{}
	}
	return &domain.CheckinSnapshot{EventID: eventID, StudentIDs: ids}, nil
}

func (f *fakeCheckinService) ClearCheckins(ctx context.Context, eventID int64) error {
	f.lastEventID = eventID
	if f.err != nil {
		return f.err
	}
	f.cleared = append(f.cleared, eventID)
	return nil
}

// fakeReconciler implements domain.Reconciler for handler tests.
type fakeReconciler struct {
	result      *domain.ReconcileResult
	err         error
	lastEventID int64
}

func (f *fakeReconciler) Reconcile(ctx context.Context, eventID int64) (*domain.ReconcileResult, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	err         error
	events      map[int64]*domain.Event
	aggregate   *domain.EventAggregate
	attendance  []*domain.AttendanceRecord
	notes       []*domain.MeetingNote
	eventTypes  []*domain.EventType
	nextID      int64
	lastParams  domain.PaginationParams
	lastUpdate  domain.EventUpdate
	lastNote    *domain.MeetingNote
	deletedIDs  []int64
	lastEventID int64
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	event.ID = f.nextID
	return nil
}

func (f *fakeEventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	f.lastEventID = id
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Event], error) {
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	items := []*domain.Event{}
	for _, e := range f.events {
		items = append(items, e)
	}
	return &domain.Page[*domain.Event]{Items: items, Total: len(items)}, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id int64, update domain.EventUpdate) (*domain.Event, error) {
	f.lastEventID, f.lastUpdate = id, update
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.Type != nil {
		e.Type = *update.Type
	}
	return e, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeEventService) GetEventDetails(ctx context.Context, id int64) (*domain.EventAggregate, error) {
	f.lastEventID = id
	if f.err != nil {
		return nil, f.err
	}
	if f.aggregate == nil || f.aggregate.Event.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.aggregate, nil
}

func (f *fakeEventService) CreateEventType(ctx context.Context, et *domain.EventType) error {
	if f.err != nil {
		return f.err
	}
	et.ID = int64(len(f.eventTypes) + 1)
	f.eventTypes = append(f.eventTypes, et)
	return nil
}

func (f *fakeEventService) ListEventTypes(ctx context.Context) ([]*domain.EventType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.eventTypes, nil
}

func (f *fakeEventService) ListAttendance(ctx context.Context, eventID int64) ([]*domain.AttendanceRecord, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.attendance, nil
}

func (f *fakeEventService) AddMeetingNote(ctx context.Context, note *domain.MeetingNote) error {
	f.lastNote = note
	if f.err != nil {
		return f.err
	}
	note.ID = "meeting_notes:n1"
	return nil
}

func (f *fakeEventService) ListMeetingNotes(ctx context.Context, eventID int64) ([]*domain.MeetingNote, error) {
	f.lastEventID = eventID
	if f.err != nil {
		return nil, f.err
	}
	return f.notes, nil
}

// fakeStudentService implements domain.StudentService for handler tests.
type fakeStudentService struct {
	err         error
	students    map[int64]*domain.Student
	history     []*domain.StudentAttendance
	lastCreated *domain.Student
	lastUpdate  domain.StudentUpdate
	lastParams  domain.PaginationParams
	deletedIDs  []int64
}

func (f *fakeStudentService) CreateStudent(ctx context.Context, s *domain.Student) error {
	f.lastCreated = s
	if f.err != nil {
		return f.err
	}
	s.ID = 42
	return nil
}

func (f *fakeStudentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeStudentService) ListStudents(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Student], error) {
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	items := []*domain.Student{}
	for _, s := range f.students {
		items = append(items, s)
	}
	return &domain.Page[*domain.Student]{Items: items, Total: len(items)}, nil
}

func (f *fakeStudentService) UpdateStudent(ctx context.Context, id int64, update domain.StudentUpdate) (*domain.Student, error) {
	f.lastUpdate = update
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.FirstName != nil {
		s.FirstName = *update.FirstName
	}
	return s, nil
}

func (f *fakeStudentService) DeleteStudent(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.students[id]; !ok {
		return domain.ErrNotFound
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeStudentService) ListStudentAttendance(ctx context.Context, id int64) ([]*domain.StudentAttendance, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.students[id]; !ok {
		return nil, domain.ErrNotFound
	}
	return f.history, nil
}

// fakeRosterService implements domain.RosterService for handler tests.
type fakeRosterService struct {
	err        error
	guardians  map[int64]*domain.Guardian
	groups     []*domain.Group
	volunteers []*domain.Volunteer
}

func (f *fakeRosterService) CreateGuardian(ctx context.Context, g *domain.Guardian) error {
	if f.err != nil {
		return f.err
	}
	g.ID = int64(len(f.guardians) + 1)
	if f.guardians == nil {
		f.guardians = map[int64]*domain.Guardian{}
	}
	f.guardians[g.ID] = g
	return nil
}

func (f *fakeRosterService) GetGuardian(ctx context.Context, id int64) (*domain.Guardian, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.guardians[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return g, nil
}

func (f *fakeRosterService) ListGuardians(ctx context.Context) ([]*domain.Guardian, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*domain.Guardian{}
	for _, g := range f.guardians {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeRosterService) CreateGroup(ctx context.Context, g *domain.Group) error {
	if f.err != nil {
		return f.err
	}
	g.ID = int64(len(f.groups) + 1)
	f.groups = append(f.groups, g)
	return nil
}

func (f *fakeRosterService) ListGroups(ctx context.Context) ([]*domain.Group, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.groups, nil
}

func (f *fakeRosterService) CreateVolunteer(ctx context.Context, v *domain.Volunteer) error {
	if f.err != nil {
		return f.err
	}
	v.ID = int64(len(f.volunteers) + 1)
	f.volunteers = append(f.volunteers, v)
	return nil
}

func (f *fakeRosterService) ListVolunteers(ctx context.Context) ([]*domain.Volunteer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.volunteers, nil
}
