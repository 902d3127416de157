package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"youthministry/internal/domain"
)

const alertTimeout = 10 * time.Second

type reconciler struct {
	checkins       domain.CheckinSet
	writer         domain.AttendanceWriter
	alerts         domain.AlertService
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewReconciler returns the engine that drains check-in sets into attendance history.
// now supplies the attendance stamp; nil means time.Now.
func NewReconciler(checkins domain.CheckinSet,
	writer domain.AttendanceWriter,
	alerts domain.AlertService,
	logger *slog.Logger,
	now func() time.Time,
	timeout time.Duration,
) domain.Reconciler {
	if now == nil {
		now = time.Now
	}
	return &reconciler{
		checkins:       checkins,
		writer:         writer,
		alerts:         alerts,
		logger:         logger,
		now:            now,
		contextTimeout: timeout,
	}
}

// Reconcile snapshots the event's check-in set, writes one attendance record per member
// in a single batch and removes those members from the set only after the batch
// committed. Students who checked in after the snapshot stay for the next run. If the
// write fails the set is left as it was. Once the batch has committed the removal runs
// detached from ctx, so a caller that disconnects does not leave the set full. If the
// removal still fails the records stay committed, the result has Cleared=false and
// operators are alerted; running Reconcile again at that point would duplicate the records.
// Each store call gets its own contextTimeout.
func (r *reconciler) Reconcile(ctx context.Context, eventID int64) (*domain.ReconcileResult, error) {
	if err := validateEventID(eventID); err != nil {
		return nil, err
	}

	members, err := r.snapshot(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("snapshot check-ins: %w", err)
	}
	if len(members) == 0 {
		return &domain.ReconcileResult{EventID: eventID, PersistedCount: 0, Cleared: true}, nil
	}

	stamp := domain.NewAttendanceStamp(r.now())
	count, err := r.persist(ctx, eventID, members, stamp)
	if err != nil {
		return nil, fmt.Errorf("persist attendance: %w", err)
	}

	// Committed: from here on the caller's cancellation must not stop the cleanup.
	clearCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.contextTimeout)
	defer cancel()

	result := &domain.ReconcileResult{EventID: eventID, PersistedCount: count, Cleared: true}
	if err := r.checkins.Remove(clearCtx, eventID, members); err != nil {
		result.Cleared = false
		r.logger.ErrorContext(clearCtx, "attendance persisted but check-in set not cleared",
			"event_id", eventID,
			"persisted_count", count,
			"key", domain.CheckinKey(eventID),
			"err", err,
		)
		r.alertClearFailed(clearCtx, eventID, count, err)
		return result, nil
	}

	r.logger.InfoContext(clearCtx, "attendance persisted",
		"event_id", eventID,
		"persisted_count", count,
		"date", stamp.Date,
		"time", stamp.Time,
	)
	return result, nil
}

func (r *reconciler) snapshot(ctx context.Context, eventID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.contextTimeout)
	defer cancel()
	return r.checkins.List(ctx, eventID)
}

func (r *reconciler) persist(ctx context.Context, eventID int64, members []int64, stamp domain.AttendanceStamp) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.contextTimeout)
	defer cancel()
	return r.writer.AppendBatch(ctx, eventID, members, stamp)
}

func (r *reconciler) alertClearFailed(ctx context.Context, eventID int64, count int, cause error) {
	if r.alerts == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
	defer cancel()

	err := r.alerts.NotifyCheckinClearFailed(ctx, &domain.CheckinClearFailedEmailData{
		EventID:        eventID,
		PersistedCount: count,
		Key:            domain.CheckinKey(eventID),
		Error:          cause.Error(),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "send clear-failed alert", "event_id", eventID, "err", err)
	}
}
