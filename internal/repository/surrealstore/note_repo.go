// Package surrealstore keeps meeting notes as documents in SurrealDB.
package surrealstore

import (
	"context"
	"fmt"
	"time"

	"youthministry/internal/domain"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const notesTable = "meeting_notes"

// Config holds the SurrealDB connection settings.
type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Open connects to SurrealDB, signs in when credentials are set and selects the
// namespace and database.
func Open(ctx context.Context, cfg Config) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect surrealdb: %w", err)
	}
	if cfg.Username != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{
			Username: cfg.Username,
			Password: cfg.Password,
		}); err != nil {
			_ = db.Close(ctx)
			return nil, fmt.Errorf("sign in surrealdb: %w", err)
		}
	}
	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}
	return db, nil
}

// noteDocument is the stored shape of a meeting note.
type noteDocument struct {
	ID        *models.RecordID      `json:"id,omitempty"`
	EventID   int64                 `json:"event_id"`
	Content   string                `json:"content"`
	Author    string                `json:"author,omitempty"`
	Tags      []string              `json:"tags"`
	CreatedAt models.CustomDateTime `json:"created_at"`
}

func toDocument(n *domain.MeetingNote) noteDocument {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return noteDocument{
		EventID:   n.EventID,
		Content:   n.Content,
		Author:    n.Author,
		Tags:      tags,
		CreatedAt: models.CustomDateTime{Time: n.CreatedAt.UTC()},
	}
}

func (d noteDocument) toNote() *domain.MeetingNote {
	n := &domain.MeetingNote{
		EventID:   d.EventID,
		Content:   d.Content,
		Author:    d.Author,
		Tags:      d.Tags,
		CreatedAt: d.CreatedAt.Time,
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if d.ID != nil {
		n.ID = d.ID.String()
	}
	return n
}

type noteRepository struct {
	db *surrealdb.DB
}

func NewNoteRepository(db *surrealdb.DB) domain.NoteRepository {
	return &noteRepository{db: db}
}

// Insert stores note and fills in its ID. A zero CreatedAt is set to now.
func (r *noteRepository) Insert(ctx context.Context, note *domain.MeetingNote) error {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}
	inserted, err := surrealdb.Insert[noteDocument](ctx, r.db, models.Table(notesTable), toDocument(note))
	if err != nil {
		return domain.NewStorageError("insert meeting note", err)
	}
	if inserted != nil && len(*inserted) > 0 && (*inserted)[0].ID != nil {
		note.ID = (*inserted)[0].ID.String()
	}
	return nil
}

func (r *noteRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.MeetingNote, error) {
	res, err := surrealdb.Query[[]noteDocument](ctx, r.db,
		"SELECT * FROM meeting_notes WHERE event_id = $event_id ORDER BY created_at DESC",
		map[string]any{"event_id": eventID},
	)
	if err != nil {
		return nil, domain.NewStorageError("list meeting notes", err)
	}
	notes := make([]*domain.MeetingNote, 0)
	if res == nil || len(*res) == 0 {
		return notes, nil
	}
	for _, d := range (*res)[0].Result {
		notes = append(notes, d.toNote())
	}
	return notes, nil
}
