package postgres

import (
	"context"
	"database/sql"

	"youthministry/internal/domain"
)

type guardianRepository struct {
	DB *sql.DB
}

func NewGuardianRepository(db *sql.DB) domain.GuardianRepository {
	return &guardianRepository{
		DB: db,
	}
}

func scanGuardian(row interface{ Scan(...any) error }) (*domain.Guardian, error) {
	g := &domain.Guardian{}
	var phone, email sql.NullString
	if err := row.Scan(&g.ID, &g.FirstName, &g.LastName, &phone, &email); err != nil {
		return nil, err
	}
	g.Phone = nullStringPtr(phone)
	g.Email = nullStringPtr(email)
	return g, nil
}

func (r *guardianRepository) Create(ctx context.Context, g *domain.Guardian) error {
	query := `
		INSERT INTO guardians (first_name, last_name, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, g.FirstName, g.LastName, g.Phone, g.Email).Scan(&g.ID); err != nil {
		return mapError("create guardian", err)
	}
	return nil
}

func (r *guardianRepository) GetByID(ctx context.Context, id int64) (*domain.Guardian, error) {
	query := `SELECT id, first_name, last_name, phone, email FROM guardians WHERE id = $1`
	g, err := scanGuardian(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("get guardian", err)
	}
	return g, nil
}

func (r *guardianRepository) List(ctx context.Context) ([]*domain.Guardian, error) {
	query := `SELECT id, first_name, last_name, phone, email FROM guardians ORDER BY last_name, first_name, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError("list guardians", err)
	}
	defer rows.Close()

	guardians := make([]*domain.Guardian, 0)
	for rows.Next() {
		g, err := scanGuardian(rows)
		if err != nil {
			return nil, mapError("scan guardian", err)
		}
		guardians = append(guardians, g)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list guardians", err)
	}
	return guardians, nil
}

type groupRepository struct {
	DB *sql.DB
}

func NewGroupRepository(db *sql.DB) domain.GroupRepository {
	return &groupRepository{
		DB: db,
	}
}

func (r *groupRepository) Create(ctx context.Context, g *domain.Group) error {
	query := `INSERT INTO groups (name, description) VALUES ($1, $2) RETURNING id`
	if err := r.DB.QueryRowContext(ctx, query, g.Name, g.Description).Scan(&g.ID); err != nil {
		return mapError("create group", err)
	}
	return nil
}

func (r *groupRepository) List(ctx context.Context) ([]*domain.Group, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, description FROM groups ORDER BY name, id`)
	if err != nil {
		return nil, mapError("list groups", err)
	}
	defer rows.Close()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		g := &domain.Group{}
		var description sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &description); err != nil {
			return nil, mapError("scan group", err)
		}
		g.Description = nullStringPtr(description)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list groups", err)
	}
	return groups, nil
}

type volunteerRepository struct {
	DB *sql.DB
}

func NewVolunteerRepository(db *sql.DB) domain.VolunteerRepository {
	return &volunteerRepository{
		DB: db,
	}
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `
		INSERT INTO volunteers (first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, v.FirstName, v.LastName, v.Email, v.Phone).Scan(&v.ID); err != nil {
		return mapError("create volunteer", err)
	}
	return nil
}

func (r *volunteerRepository) List(ctx context.Context) ([]*domain.Volunteer, error) {
	query := `SELECT id, first_name, last_name, email, phone FROM volunteers ORDER BY last_name, first_name, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError("list volunteers", err)
	}
	defer rows.Close()

	volunteers := make([]*domain.Volunteer, 0)
	for rows.Next() {
		v := &domain.Volunteer{}
		var email, phone sql.NullString
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &email, &phone); err != nil {
			return nil, mapError("scan volunteer", err)
		}
		v.Email = nullStringPtr(email)
		v.Phone = nullStringPtr(phone)
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list volunteers", err)
	}
	return volunteers, nil
}
