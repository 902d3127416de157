package domain

import "context"

// Event is a youth-group meeting or outing. Type is the free-form label shown on the
// dashboard; EventTypeID references the catalogue of event types.
// swagger:model Event
type Event struct {
	ID          int64   `json:"id"`
	EventTypeID int64   `json:"event_type_id"`
	Type        string  `json:"type"`
	Notes       *string `json:"notes"`
}

// NewEvent returns a new Event. ID is set by the repository on create.
func NewEvent(eventTypeID int64, typ string, notes *string) *Event {
	return &Event{
		EventTypeID: eventTypeID,
		Type:        typ,
		Notes:       notes,
	}
}

// EventUpdate is a partial update of an event. Nil fields are left unchanged.
type EventUpdate struct {
	EventTypeID *int64
	Type        *string
	Notes       *string
}

// IsEmpty reports whether the update changes nothing.
func (u EventUpdate) IsEmpty() bool {
	return u.EventTypeID == nil && u.Type == nil && u.Notes == nil
}

// EventType is an entry in the event type catalogue (e.g. "Bible study", "Retreat").
// swagger:model EventType
type EventType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EventAggregate is the dashboard view of one event: its durable row, the live check-in
// snapshot and its meeting notes (most recent first). It is never stored.
// swagger:model EventAggregate
type EventAggregate struct {
	Event             *Event   `json:"event"`
	LiveAttendees     []int64  `json:"live_attendees"`
	LiveAttendeeCount int      `json:"live_attendee_count"`
	MeetingNotes      []string `json:"meeting_notes"`
	MeetingNoteCount  int      `json:"meeting_note_count"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context, params PaginationParams) (*Page[*Event], error)
	Update(ctx context.Context, id int64, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventTypeRepository defines the interface for event type storage.
type EventTypeRepository interface {
	Create(ctx context.Context, et *EventType) error
	List(ctx context.Context) ([]*EventType, error)
}

// EventService defines event management plus the read-side aggregate and meeting notes.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) (*Page[*Event], error)
	UpdateEvent(ctx context.Context, id int64, update EventUpdate) (*Event, error)
	// DeleteEvent removes the event (attendance cascades) and clears its check-in set.
	DeleteEvent(ctx context.Context, id int64) error
	// GetEventDetails composes the event row, live check-ins and meeting notes.
	// Returns ErrNotFound without further reads when the event does not exist.
	GetEventDetails(ctx context.Context, id int64) (*EventAggregate, error)

	CreateEventType(ctx context.Context, et *EventType) error
	ListEventTypes(ctx context.Context) ([]*EventType, error)

	// ListAttendance returns the persisted attendance of an existing event.
	ListAttendance(ctx context.Context, eventID int64) ([]*AttendanceRecord, error)

	AddMeetingNote(ctx context.Context, note *MeetingNote) error
	ListMeetingNotes(ctx context.Context, eventID int64) ([]*MeetingNote, error)
}
