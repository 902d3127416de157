package domain

import "context"

// Student is a young person enrolled in the program.
// swagger:model Student
type Student struct {
	ID           int64   `json:"id"`
	GuardianID   *int64  `json:"guardian_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	GuardianName *string `json:"guardian_name,omitempty"`
}

// NewStudent returns a new Student. ID is set by the repository on create.
func NewStudent(firstName, lastName string, guardianID *int64) *Student {
	return &Student{
		FirstName:  firstName,
		LastName:   lastName,
		GuardianID: guardianID,
	}
}

// StudentUpdate is a partial update of a student. Nil fields are left unchanged.
type StudentUpdate struct {
	FirstName  *string
	LastName   *string
	GuardianID *int64
}

// IsEmpty reports whether the update changes nothing.
func (u StudentUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.GuardianID == nil
}

// StudentRepository defines the interface for student storage.
type StudentRepository interface {
	Create(ctx context.Context, s *Student) error
	GetByID(ctx context.Context, id int64) (*Student, error)
	List(ctx context.Context, params PaginationParams) (*Page[*Student], error)
	Update(ctx context.Context, id int64, update StudentUpdate) (*Student, error)
	Delete(ctx context.Context, id int64) error
}

// StudentService defines student management and attendance history.
type StudentService interface {
	CreateStudent(ctx context.Context, s *Student) error
	GetStudent(ctx context.Context, id int64) (*Student, error)
	ListStudents(ctx context.Context, params PaginationParams) (*Page[*Student], error)
	UpdateStudent(ctx context.Context, id int64, update StudentUpdate) (*Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	ListStudentAttendance(ctx context.Context, id int64) ([]*StudentAttendance, error)
}
