package domain

import (
	"context"
	"time"
)

// Layouts of the date and wall-clock parts of an attendance stamp.
const (
	AttendanceDateLayout = "2006-01-02"
	AttendanceTimeLayout = "15:04:05"
)

// AttendanceStamp is the date and second-precision time shared by every record
// written in one reconciliation run.
type AttendanceStamp struct {
	Date string
	Time string
}

// NewAttendanceStamp captures t as an AttendanceStamp, dropping sub-second precision.
func NewAttendanceStamp(t time.Time) AttendanceStamp {
	return AttendanceStamp{
		Date: t.Format(AttendanceDateLayout),
		Time: t.Format(AttendanceTimeLayout),
	}
}

// AttendanceRecord is one durable attendance row. Many rows may exist for the same
// (event, student) pair.
// swagger:model AttendanceRecord
type AttendanceRecord struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"event_id"`
	StudentID int64  `json:"student_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// StudentAttendance is an attendance row joined with the event's type label.
// swagger:model StudentAttendance
type StudentAttendance struct {
	AttendanceRecord
	EventType *string `json:"event_type"`
}

// AttendanceWriter appends attendance rows. AppendBatch writes one row per student id
// inside a single transaction and returns the number written; on any failure nothing
// is committed and a StorageError is returned.
type AttendanceWriter interface {
	AppendBatch(ctx context.Context, eventID int64, studentIDs []int64, stamp AttendanceStamp) (int, error)
}

// AttendanceRepository is the relational attendance store.
type AttendanceRepository interface {
	AttendanceWriter
	ListByEventID(ctx context.Context, eventID int64) ([]*AttendanceRecord, error)
	ListByStudentID(ctx context.Context, studentID int64) ([]*StudentAttendance, error)
}

// ReconcileResult reports the outcome of draining a check-in set.
// Cleared is false when the records committed but the set could not be cleared; the
// set must then be cleared on its own, not reconciled again.
// swagger:model ReconcileResult
type ReconcileResult struct {
	EventID        int64 `json:"event_id"`
	PersistedCount int   `json:"persisted_count"`
	Cleared        bool  `json:"cleared"`
}

// Reconciler drains an event's check-in set into attendance history.
type Reconciler interface {
	Reconcile(ctx context.Context, eventID int64) (*ReconcileResult, error)
}
