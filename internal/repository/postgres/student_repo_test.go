package postgres

import (
	"context"
	"database/sql"
	"testing"

	"youthministry/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var studentCols = []string{"id", "guardian_id", "first_name", "last_name", "guardian_name"}

func TestStudentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO students \(guardian_id, first_name, last_name\)`).
		WithArgs(int64(4), "Ana", "Lopez").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(101)))

	repo := NewStudentRepository(db)
	s := domain.NewStudent("Ana", "Lopez", int64Ptr(4))
	require.NoError(t, repo.Create(context.Background(), s))
	assert.Equal(t, int64(101), s.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Student
		wantErr error
	}{
		{
			name: "with guardian",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`LEFT JOIN guardians g ON s.guardian_id = g.id\s+WHERE s.id = \$1`).
					WithArgs(int64(101)).
					WillReturnRows(sqlmock.NewRows(studentCols).
						AddRow(int64(101), int64(4), "Ana", "Lopez", "Maria Lopez"))
			},
			want: &domain.Student{ID: 101, GuardianID: int64Ptr(4), FirstName: "Ana", LastName: "Lopez", GuardianName: strPtr("Maria Lopez")},
		},
		{
			name: "without guardian",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE s.id = \$1`).
					WithArgs(int64(101)).
					WillReturnRows(sqlmock.NewRows(studentCols).
						AddRow(int64(101), nil, "Ana", "Lopez", nil))
			},
			want: &domain.Student{ID: 101, FirstName: "Ana", LastName: "Lopez"},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE s.id = \$1`).
					WithArgs(int64(101)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewStudentRepository(db)
			got, err := repo.GetByID(ctx, 101)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStudentRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM students`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY s.id LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(studentCols).
			AddRow(int64(101), nil, "Ana", "Lopez", nil))

	repo := NewStudentRepository(db)
	page, err := repo.List(context.Background(), domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		update  domain.StudentUpdate
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name:   "updates then reloads",
			update: domain.StudentUpdate{LastName: strPtr("Perez")},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE students SET`).
					WithArgs(nil, "Perez", nil, int64(101)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`WHERE s.id = \$1`).
					WithArgs(int64(101)).
					WillReturnRows(sqlmock.NewRows(studentCols).
						AddRow(int64(101), nil, "Ana", "Perez", nil))
			},
		},
		{
			name:   "missing student",
			update: domain.StudentUpdate{FirstName: strPtr("Ann")},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE students SET`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewStudentRepository(db)
			got, err := repo.Update(ctx, 101, tt.update)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Perez", got.LastName)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStudentRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM students WHERE id = \$1`).
		WithArgs(int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewStudentRepository(db)
	err = repo.Delete(context.Background(), 101)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
