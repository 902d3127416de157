package services

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"youthministry/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCheckinSet is an in-memory CheckinSet for tests.
type fakeCheckinSet struct {
	mu        sync.Mutex
	sets      map[int64]map[int64]struct{}
	addErr    error
	listErr   error
	clearErr  error
	removeErr error
	clears    int
	removes   int
}

func newFakeCheckinSet() *fakeCheckinSet {
	return &fakeCheckinSet{sets: make(map[int64]map[int64]struct{})}
}

func (f *fakeCheckinSet) Add(ctx context.Context, eventID, studentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	if f.sets[eventID] == nil {
		f.sets[eventID] = make(map[int64]struct{})
	}
	f.sets[eventID][studentID] = struct{}{}
	return nil
}

func (f *fakeCheckinSet) List(ctx context.Context, eventID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	ids := make([]int64, 0, len(f.sets[eventID]))
	for id := range f.sets[eventID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeCheckinSet) Clear(ctx context.Context, eventID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.sets, eventID)
	return nil
}

func (f *fakeCheckinSet) Remove(ctx context.Context, eventID int64, studentIDs []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes++
	if f.removeErr != nil {
		return f.removeErr
	}
	if err := ctx.Err(); err != nil {
		return domain.NewStorageError("remove check-ins", err)
	}
	for _, id := range studentIDs {
		delete(f.sets[eventID], id)
	}
	return nil
}

// appendCall records one AppendBatch invocation.
type appendCall struct {
	eventID    int64
	studentIDs []int64
	stamp      domain.AttendanceStamp
}

// fakeAttendanceRepo is an in-memory AttendanceRepository for tests.
type fakeAttendanceRepo struct {
	calls     []appendCall
	records   []*domain.AttendanceRecord
	history   map[int64][]*domain.StudentAttendance
	appendErr error
	// onAppend runs inside AppendBatch before the write, to simulate concurrent activity.
	onAppend func()
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{history: make(map[int64][]*domain.StudentAttendance)}
}

func (f *fakeAttendanceRepo) AppendBatch(ctx context.Context, eventID int64, studentIDs []int64, stamp domain.AttendanceStamp) (int, error) {
	f.calls = append(f.calls, appendCall{eventID: eventID, studentIDs: append([]int64(nil), studentIDs...), stamp: stamp})
	if f.onAppend != nil {
		f.onAppend()
	}
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	for _, id := range studentIDs {
		f.records = append(f.records, &domain.AttendanceRecord{
			ID:        int64(len(f.records) + 1),
			EventID:   eventID,
			StudentID: id,
			Date:      stamp.Date,
			Time:      stamp.Time,
		})
	}
	return len(studentIDs), nil
}

func (f *fakeAttendanceRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.AttendanceRecord, error) {
	var out []*domain.AttendanceRecord
	for _, r := range f.records {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByStudentID(ctx context.Context, studentID int64) ([]*domain.StudentAttendance, error) {
	return f.history[studentID], nil
}

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	byID    map[int64]*domain.Event
	nextID  int64
	err     error // if set, every method returns this error
	getHits int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[int64]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	e.ID = f.nextID
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	f.getHits++
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Event], error) {
	if f.err != nil {
		return nil, f.err
	}
	var items []*domain.Event
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.byID[id]; ok {
			items = append(items, e)
		}
	}
	return &domain.Page[*domain.Event]{Items: items, Total: len(items)}, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id int64, update domain.EventUpdate) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.EventTypeID != nil {
		e.EventTypeID = *update.EventTypeID
	}
	if update.Type != nil {
		e.Type = *update.Type
	}
	if update.Notes != nil {
		e.Notes = update.Notes
	}
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeEventTypeRepo struct {
	types []*domain.EventType
}

func (f *fakeEventTypeRepo) Create(ctx context.Context, et *domain.EventType) error {
	et.ID = int64(len(f.types) + 1)
	f.types = append(f.types, et)
	return nil
}

func (f *fakeEventTypeRepo) List(ctx context.Context) ([]*domain.EventType, error) {
	return f.types, nil
}

// fakeNoteRepo keeps notes in insertion order and lists them newest first.
type fakeNoteRepo struct {
	mu      sync.Mutex
	notes   []*domain.MeetingNote
	listErr error
	lists   int
}

func (f *fakeNoteRepo) Insert(ctx context.Context, note *domain.MeetingNote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Date(2025, 1, 1, 0, 0, len(f.notes), 0, time.UTC)
	}
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeNoteRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.MeetingNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.MeetingNote
	for _, n := range f.notes {
		if n.EventID == eventID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeAlertService records alerts.
type fakeAlertService struct {
	sent []*domain.CheckinClearFailedEmailData
	err  error
}

func (f *fakeAlertService) NotifyCheckinClearFailed(ctx context.Context, data *domain.CheckinClearFailedEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}
