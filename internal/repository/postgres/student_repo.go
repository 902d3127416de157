package postgres

import (
	"context"
	"database/sql"

	"youthministry/internal/domain"
)

type studentRepository struct {
	DB *sql.DB
}

func NewStudentRepository(db *sql.DB) domain.StudentRepository {
	return &studentRepository{
		DB: db,
	}
}

const studentSelect = `
	SELECT s.id, s.guardian_id, s.first_name, s.last_name, g.first_name || ' ' || g.last_name
	FROM students s
	LEFT JOIN guardians g ON s.guardian_id = g.id
`

func scanStudent(row interface{ Scan(...any) error }) (*domain.Student, error) {
	s := &domain.Student{}
	var guardianID sql.NullInt64
	var guardianName sql.NullString
	if err := row.Scan(&s.ID, &guardianID, &s.FirstName, &s.LastName, &guardianName); err != nil {
		return nil, err
	}
	s.GuardianID = nullInt64Ptr(guardianID)
	s.GuardianName = nullStringPtr(guardianName)
	return s, nil
}

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	query := `
		INSERT INTO students (guardian_id, first_name, last_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.DB.QueryRowContext(ctx, query, s.GuardianID, s.FirstName, s.LastName).Scan(&s.ID); err != nil {
		return mapError("create student", err)
	}
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	s, err := scanStudent(r.DB.QueryRowContext(ctx, studentSelect+` WHERE s.id = $1`, id))
	if err != nil {
		return nil, mapError("get student", err)
	}
	return s, nil
}

func (r *studentRepository) List(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Student], error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return nil, mapError("count students", err)
	}

	rows, err := r.DB.QueryContext(ctx, studentSelect+` ORDER BY s.id LIMIT $1 OFFSET $2`, params.PageSize, params.Offset())
	if err != nil {
		return nil, mapError("list students", err)
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, mapError("scan student", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list students", err)
	}
	return &domain.Page[*domain.Student]{Items: students, Total: total}, nil
}

// Update applies the non-nil fields of update and returns the refreshed student.
func (r *studentRepository) Update(ctx context.Context, id int64, update domain.StudentUpdate) (*domain.Student, error) {
	if !update.IsEmpty() {
		query := `
			UPDATE students SET
				first_name = COALESCE($1, first_name),
				last_name = COALESCE($2, last_name),
				guardian_id = COALESCE($3, guardian_id)
			WHERE id = $4
		`
		if err := execAffectingOne(ctx, r.DB, "update student", query, update.FirstName, update.LastName, update.GuardianID, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *studentRepository) Delete(ctx context.Context, id int64) error {
	return execAffectingOne(ctx, r.DB, "delete student", `DELETE FROM students WHERE id = $1`, id)
}
