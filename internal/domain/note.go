package domain

import (
	"context"
	"time"
)

// MeetingNote is a free-form note attached to an event, kept in the document store.
// swagger:model MeetingNote
type MeetingNote struct {
	ID        string    `json:"id"`
	EventID   int64     `json:"event_id"`
	Content   string    `json:"content"`
	Author    string    `json:"author,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteRepository stores meeting notes.
type NoteRepository interface {
	Insert(ctx context.Context, note *MeetingNote) error
	// ListByEventID returns the event's notes ordered by CreatedAt, most recent first.
	ListByEventID(ctx context.Context, eventID int64) ([]*MeetingNote, error)
}
