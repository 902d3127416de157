package postgres

import (
	"context"
	"database/sql"

	"youthministry/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, event_type_id, type, notes`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var notes sql.NullString
	if err := row.Scan(&e.ID, &e.EventTypeID, &e.Type, &notes); err != nil {
		return nil, err
	}
	e.Notes = nullStringPtr(notes)
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (event_type_id, type, notes)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, e.EventTypeID, e.Type, e.Notes).Scan(&e.ID); err != nil {
		return mapError("create event", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("get event", err)
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Event], error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, mapError("count events", err)
	}

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, mapError("list events", err)
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, mapError("scan event", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list events", err)
	}
	return &domain.Page[*domain.Event]{Items: events, Total: total}, nil
}

// Update applies the non-nil fields of update. COALESCE keeps the stored value for nil fields.
func (r *eventRepository) Update(ctx context.Context, id int64, update domain.EventUpdate) (*domain.Event, error) {
	if update.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	query := `
		UPDATE events SET
			event_type_id = COALESCE($1, event_type_id),
			type = COALESCE($2, type),
			notes = COALESCE($3, notes)
		WHERE id = $4
		RETURNING ` + eventColumns
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, update.EventTypeID, update.Type, update.Notes, id))
	if err != nil {
		return nil, mapError("update event", err)
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.DB, "delete event", `DELETE FROM events WHERE id = $1`, id)
}

type eventTypeRepository struct {
	DB *sql.DB
}

func NewEventTypeRepository(db *sql.DB) domain.EventTypeRepository {
	return &eventTypeRepository{
		DB: db,
	}
}

func (r *eventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	query := `INSERT INTO event_types (name) VALUES ($1) RETURNING id`
	if err := r.DB.QueryRowContext(ctx, query, et.Name).Scan(&et.ID); err != nil {
		return mapError("create event type", err)
	}
	return nil
}

func (r *eventTypeRepository) List(ctx context.Context) ([]*domain.EventType, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM event_types ORDER BY name`)
	if err != nil {
		return nil, mapError("list event types", err)
	}
	defer rows.Close()

	types := make([]*domain.EventType, 0)
	for rows.Next() {
		et := &domain.EventType{}
		if err := rows.Scan(&et.ID, &et.Name); err != nil {
			return nil, mapError("scan event type", err)
		}
		types = append(types, et)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list event types", err)
	}
	return types, nil
}
