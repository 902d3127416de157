package services

import (
	"context"
	"fmt"
	"time"

	"youthministry/internal/domain"
)

type checkinService struct {
	checkins       domain.CheckinSet
	contextTimeout time.Duration
}

// NewCheckinService returns a CheckinService over the given check-in set. Event and
// student ids are not checked against the relational store.
func NewCheckinService(checkins domain.CheckinSet, timeout time.Duration) domain.CheckinService {
	return &checkinService{
		checkins:       checkins,
		contextTimeout: timeout,
	}
}

func validateEventID(eventID int64) error {
	if eventID <= 0 {
		return domain.ValidationError("event_id must be a positive integer")
	}
	return nil
}

func (s *checkinService) CheckIn(ctx context.Context, eventID, studentID int64) (*domain.CheckinReceipt, error) {
	if err := validateEventID(eventID); err != nil {
		return nil, err
	}
	if studentID <= 0 {
		return nil, domain.ValidationError("student_id must be a positive integer")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkins.Add(ctx, eventID, studentID); err != nil {
		return nil, fmt.Errorf("check in student %d: %w", studentID, err)
	}
	return &domain.CheckinReceipt{
		EventID:   eventID,
		StudentID: studentID,
		Status:    domain.CheckinStatusCheckedIn,
	}, nil
}

func (s *checkinService) ListCheckedIn(ctx context.Context, eventID int64) (*domain.CheckinSnapshot, error) {
	if err := validateEventID(eventID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ids, err := s.checkins.List(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return &domain.CheckinSnapshot{EventID: eventID, StudentIDs: ids}, nil
}

func (s *checkinService) ClearCheckins(ctx context.Context, eventID int64) error {
	if err := validateEventID(eventID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.checkins.Clear(ctx, eventID); err != nil {
		return fmt.Errorf("clear check-ins: %w", err)
	}
	return nil
}
