package services

import (
	"context"
	"testing"
	"time"

	"youthministry/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStudentRepo is an in-memory StudentRepository for tests.
type fakeStudentRepo struct {
	byID   map[int64]*domain.Student
	nextID int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byID: make(map[int64]*domain.Student), nextID: 1}
}

func (f *fakeStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	s.ID = f.nextID
	f.nextID++
	f.byID[s.ID] = s
	return nil
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStudentRepo) List(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Student], error) {
	return &domain.Page[*domain.Student]{Total: len(f.byID)}, nil
}

func (f *fakeStudentRepo) Update(ctx context.Context, id int64, update domain.StudentUpdate) (*domain.Student, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.FirstName != nil {
		s.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		s.LastName = *update.LastName
	}
	if update.GuardianID != nil {
		s.GuardianID = update.GuardianID
	}
	return s, nil
}

func (f *fakeStudentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestStudentService_CreateStudent(t *testing.T) {
	ctx := context.Background()
	zero := int64(0)

	tests := []struct {
		name    string
		student *domain.Student
		wantErr error
	}{
		{name: "success", student: domain.NewStudent(" Ana ", "Lopez", nil)},
		{name: "missing last name", student: domain.NewStudent("Ana", "", nil), wantErr: domain.ErrInvalidInput},
		{name: "bad guardian id", student: domain.NewStudent("Ana", "Lopez", &zero), wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStudentService(newFakeStudentRepo(), newFakeAttendanceRepo(), time.Second)
			err := svc.CreateStudent(ctx, tt.student)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), tt.student.ID)
			assert.Equal(t, "Ana", tt.student.FirstName)
		})
	}
}

func TestStudentService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStudentRepo()
	svc := NewStudentService(repo, newFakeAttendanceRepo(), time.Second)
	require.NoError(t, svc.CreateStudent(ctx, domain.NewStudent("Ana", "Lopez", nil)))

	last := "Perez"
	got, err := svc.UpdateStudent(ctx, 1, domain.StudentUpdate{LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "Perez", got.LastName)

	blank := " "
	_, err = svc.UpdateStudent(ctx, 1, domain.StudentUpdate{FirstName: &blank})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, svc.DeleteStudent(ctx, 1))
	_, err = svc.GetStudent(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, svc.DeleteStudent(ctx, 1), domain.ErrNotFound)
}

func TestStudentService_ListStudents(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepo(), newFakeAttendanceRepo(), time.Second)

	page, err := svc.ListStudents(context.Background(), domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
}

func TestStudentService_ListStudentAttendance(t *testing.T) {
	ctx := context.Background()
	students := newFakeStudentRepo()
	attendance := newFakeAttendanceRepo()
	svc := NewStudentService(students, attendance, time.Second)
	require.NoError(t, svc.CreateStudent(ctx, domain.NewStudent("Ana", "Lopez", nil)))

	history, err := svc.ListStudentAttendance(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)

	typ := "Youth night"
	attendance.history[1] = []*domain.StudentAttendance{
		{AttendanceRecord: domain.AttendanceRecord{ID: 2, EventID: 3, StudentID: 1, Date: "2025-02-01", Time: "18:00:00"}, EventType: &typ},
	}
	history, err = svc.ListStudentAttendance(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Youth night", *history[0].EventType)

	_, err = svc.ListStudentAttendance(ctx, 2)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
