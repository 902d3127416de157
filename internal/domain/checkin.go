package domain

import (
	"context"
	"strconv"
)

// CheckinStatusCheckedIn is the status reported for a successful check-in.
const CheckinStatusCheckedIn = "checked_in"

// CheckinKey returns the key-value store key holding the check-in set of an event.
// Every reader and writer of a check-in set must go through this function.
func CheckinKey(eventID int64) string {
	return "event:" + strconv.FormatInt(eventID, 10) + ":checkins"
}

// CheckinSet is the live, per-event set of checked-in student ids held in the
// key-value store. Each method is a single atomic round trip; sequences of calls are not.
type CheckinSet interface {
	// Add puts studentID in the event's set. Adding a present member is a no-op.
	Add(ctx context.Context, eventID, studentID int64) error
	// List returns the current members in no particular order. An unknown or cleared
	// set yields an empty slice, not an error.
	List(ctx context.Context, eventID int64) ([]int64, error)
	// Clear removes the whole set. Clearing an empty or missing set succeeds.
	Clear(ctx context.Context, eventID int64) error
	// Remove deletes only the given members, leaving any others in place.
	Remove(ctx context.Context, eventID int64, studentIDs []int64) error
}

// CheckinReceipt is returned to the client after a check-in.
// swagger:model CheckinReceipt
type CheckinReceipt struct {
	EventID   int64  `json:"event_id"`
	StudentID int64  `json:"student_id"`
	Status    string `json:"status"`
}

// CheckinSnapshot is the set of students checked in to an event at read time.
// swagger:model CheckinSnapshot
type CheckinSnapshot struct {
	EventID    int64   `json:"event_id"`
	StudentIDs []int64 `json:"student_ids"`
}

// CheckinService defines the check-in operations exposed to clients and operators.
type CheckinService interface {
	CheckIn(ctx context.Context, eventID, studentID int64) (*CheckinReceipt, error)
	ListCheckedIn(ctx context.Context, eventID int64) (*CheckinSnapshot, error)
	// ClearCheckins empties the set without persisting it. Operators use it to finish a
	// reconciliation whose records committed but whose clear failed.
	ClearCheckins(ctx context.Context, eventID int64) error
}
