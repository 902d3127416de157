package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"youthministry/internal/domain"

	"golang.org/x/sync/errgroup"
)

type eventService struct {
	eventRepo      domain.EventRepository
	eventTypeRepo  domain.EventTypeRepository
	attendanceRepo domain.AttendanceRepository
	checkins       domain.CheckinSet
	noteRepo       domain.NoteRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	eventTypeRepo domain.EventTypeRepository,
	attendanceRepo domain.AttendanceRepository,
	checkins domain.CheckinSet,
	noteRepo domain.NoteRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		eventTypeRepo:  eventTypeRepo,
		attendanceRepo: attendanceRepo,
		checkins:       checkins,
		noteRepo:       noteRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func validateEvent(e *domain.Event) error {
	if e.EventTypeID <= 0 {
		return domain.ValidationError("event_type_id must be a positive integer")
	}
	if strings.TrimSpace(e.Type) == "" {
		return domain.ValidationError("type is required")
	}
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.Type = strings.TrimSpace(event.Type)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	if err := validateEventID(id); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Event], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	page, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if page.Items == nil {
		page.Items = []*domain.Event{}
	}
	return page, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int64, update domain.EventUpdate) (*domain.Event, error) {
	if err := validateEventID(id); err != nil {
		return nil, err
	}
	if update.EventTypeID != nil && *update.EventTypeID <= 0 {
		return nil, domain.ValidationError("event_type_id must be a positive integer")
	}
	if update.Type != nil && strings.TrimSpace(*update.Type) == "" {
		return nil, domain.ValidationError("type cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// DeleteEvent removes the event row (attendance rows cascade) and then clears its
// check-in set. A failed clear is logged; the event is already gone.
func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := validateEventID(id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if err := s.checkins.Clear(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "event deleted but check-in set not cleared",
			"event_id", id, "key", domain.CheckinKey(id), "err", err)
	}
	return nil
}

// GetEventDetails reads the event row first and returns ErrNotFound without touching
// the other stores. The live check-ins and the notes are then fetched concurrently.
// The three reads are not a consistent snapshot.
func (s *eventService) GetEventDetails(ctx context.Context, id int64) (*domain.EventAggregate, error) {
	if err := validateEventID(id); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var (
		attendees []int64
		notes     []*domain.MeetingNote
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := s.checkins.List(gctx, id)
		if err != nil {
			return fmt.Errorf("list check-ins: %w", err)
		}
		attendees = ids
		return nil
	})
	g.Go(func() error {
		list, err := s.noteRepo.ListByEventID(gctx, id)
		if err != nil {
			return fmt.Errorf("list meeting notes: %w", err)
		}
		notes = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if attendees == nil {
		attendees = []int64{}
	}
	texts := make([]string, 0, len(notes))
	for _, n := range notes {
		texts = append(texts, n.Content)
	}
	return &domain.EventAggregate{
		Event:             event,
		LiveAttendees:     attendees,
		LiveAttendeeCount: len(attendees),
		MeetingNotes:      texts,
		MeetingNoteCount:  len(texts),
	}, nil
}

func (s *eventService) CreateEventType(ctx context.Context, et *domain.EventType) error {
	et.Name = strings.TrimSpace(et.Name)
	if et.Name == "" {
		return domain.ValidationError("name is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventTypeRepo.Create(ctx, et); err != nil {
		return fmt.Errorf("create event type: %w", err)
	}
	return nil
}

func (s *eventService) ListEventTypes(ctx context.Context) ([]*domain.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	types, err := s.eventTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	if types == nil {
		types = []*domain.EventType{}
	}
	return types, nil
}

func (s *eventService) ListAttendance(ctx context.Context, eventID int64) ([]*domain.AttendanceRecord, error) {
	if err := validateEventID(eventID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	records, err := s.attendanceRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if records == nil {
		records = []*domain.AttendanceRecord{}
	}
	return records, nil
}

// AddMeetingNote stores a note for an existing event.
func (s *eventService) AddMeetingNote(ctx context.Context, note *domain.MeetingNote) error {
	if err := validateEventID(note.EventID); err != nil {
		return err
	}
	note.Content = strings.TrimSpace(note.Content)
	if note.Content == "" {
		return domain.ValidationError("content is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, note.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("event %d: %w", note.EventID, err)
		}
		return fmt.Errorf("get event: %w", err)
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	if err := s.noteRepo.Insert(ctx, note); err != nil {
		return fmt.Errorf("add meeting note: %w", err)
	}
	return nil
}

func (s *eventService) ListMeetingNotes(ctx context.Context, eventID int64) ([]*domain.MeetingNote, error) {
	if err := validateEventID(eventID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	notes, err := s.noteRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list meeting notes: %w", err)
	}
	if notes == nil {
		notes = []*domain.MeetingNote{}
	}
	return notes, nil
}
