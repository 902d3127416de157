package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"youthministry/internal/domain"

	"github.com/lib/pq"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

const insertAttendanceQuery = `
	INSERT INTO attendance_records (event_id, student_id, attended_on, attended_time)
	VALUES ($1, $2, $3, $4)
`

const (
	attendanceEventFK   = "attendance_records_event_id_fkey"
	attendanceStudentFK = "attendance_records_student_id_fkey"
)

// referenceError turns a foreign key violation on an attendance insert into an error
// that will not go away on retry. Any other error is returned unchanged.
func referenceError(err error, eventID, studentID int64) error {
	var perr *pq.Error
	if !errors.As(err, &perr) || perr.Code != "23503" {
		return err
	}
	switch perr.Constraint {
	case attendanceEventFK:
		return fmt.Errorf("event %d: %w", eventID, domain.ErrNotFound)
	case attendanceStudentFK:
		return domain.ValidationError(fmt.Sprintf("student %d does not exist", studentID))
	}
	return err
}

// AppendBatch inserts one row per student inside a single transaction. Nothing is
// committed unless every insert succeeds. An unknown event yields ErrNotFound and an
// unknown student ErrInvalidInput; neither is a StorageError.
func (r *attendanceRepository) AppendBatch(ctx context.Context, eventID int64, studentIDs []int64, stamp domain.AttendanceStamp) (int, error) {
	if len(studentIDs) == 0 {
		return 0, nil
	}
	err := withTx(ctx, r.DB, func(tx *sql.Tx) error {
		for _, studentID := range studentIDs {
			if _, err := tx.ExecContext(ctx, insertAttendanceQuery, eventID, studentID, stamp.Date, stamp.Time); err != nil {
				return referenceError(err, eventID, studentID)
			}
		}
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return 0, err
	}
	if err != nil {
		return 0, mapError("append attendance", err)
	}
	return len(studentIDs), nil
}

func (r *attendanceRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.AttendanceRecord, error) {
	query := `
		SELECT id, event_id, student_id, to_char(attended_on, 'YYYY-MM-DD'), to_char(attended_time, 'HH24:MI:SS')
		FROM attendance_records
		WHERE event_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, mapError("list attendance by event", err)
	}
	defer rows.Close()

	records := make([]*domain.AttendanceRecord, 0)
	for rows.Next() {
		rec := &domain.AttendanceRecord{}
		if err := rows.Scan(&rec.ID, &rec.EventID, &rec.StudentID, &rec.Date, &rec.Time); err != nil {
			return nil, mapError("scan attendance", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list attendance by event", err)
	}
	return records, nil
}

func (r *attendanceRepository) ListByStudentID(ctx context.Context, studentID int64) ([]*domain.StudentAttendance, error) {
	query := `
		SELECT a.id, a.event_id, a.student_id,
		       to_char(a.attended_on, 'YYYY-MM-DD'), to_char(a.attended_time, 'HH24:MI:SS'),
		       e.type
		FROM attendance_records a
		LEFT JOIN events e ON a.event_id = e.id
		WHERE a.student_id = $1
		ORDER BY a.attended_on DESC, a.attended_time DESC, a.id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, mapError("list attendance by student", err)
	}
	defer rows.Close()

	history := make([]*domain.StudentAttendance, 0)
	for rows.Next() {
		item := &domain.StudentAttendance{}
		var eventType sql.NullString
		if err := rows.Scan(&item.ID, &item.EventID, &item.StudentID, &item.Date, &item.Time, &eventType); err != nil {
			return nil, mapError("scan attendance", err)
		}
		item.EventType = nullStringPtr(eventType)
		history = append(history, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list attendance by student", err)
	}
	return history, nil
}
