package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"youthministry/internal/domain"
)

type studentService struct {
	studentRepo    domain.StudentRepository
	attendanceRepo domain.AttendanceRepository
	contextTimeout time.Duration
}

func NewStudentService(studentRepo domain.StudentRepository, attendanceRepo domain.AttendanceRepository, timeout time.Duration) domain.StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		contextTimeout: timeout,
	}
}

func validateStudentID(id int64) error {
	if id <= 0 {
		return domain.ValidationError("student id must be a positive integer")
	}
	return nil
}

func (s *studentService) CreateStudent(ctx context.Context, student *domain.Student) error {
	student.FirstName = strings.TrimSpace(student.FirstName)
	student.LastName = strings.TrimSpace(student.LastName)
	if student.FirstName == "" || student.LastName == "" {
		return domain.ValidationError("first_name and last_name are required")
	}
	if student.GuardianID != nil && *student.GuardianID <= 0 {
		return domain.ValidationError("guardian_id must be a positive integer")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (s *studentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	if err := validateStudentID(id); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

func (s *studentService) ListStudents(ctx context.Context, params domain.PaginationParams) (*domain.Page[*domain.Student], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	page, err := s.studentRepo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	if page.Items == nil {
		page.Items = []*domain.Student{}
	}
	return page, nil
}

func (s *studentService) UpdateStudent(ctx context.Context, id int64, update domain.StudentUpdate) (*domain.Student, error) {
	if err := validateStudentID(id); err != nil {
		return nil, err
	}
	if update.FirstName != nil && strings.TrimSpace(*update.FirstName) == "" {
		return nil, domain.ValidationError("first_name cannot be empty")
	}
	if update.LastName != nil && strings.TrimSpace(*update.LastName) == "" {
		return nil, domain.ValidationError("last_name cannot be empty")
	}
	if update.GuardianID != nil && *update.GuardianID <= 0 {
		return nil, domain.ValidationError("guardian_id must be a positive integer")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	student, err := s.studentRepo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	return student, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := validateStudentID(id); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

// ListStudentAttendance returns the student's attendance, newest first.
func (s *studentService) ListStudentAttendance(ctx context.Context, id int64) ([]*domain.StudentAttendance, error) {
	if err := validateStudentID(id); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	history, err := s.attendanceRepo.ListByStudentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if history == nil {
		history = []*domain.StudentAttendance{}
	}
	return history, nil
}
