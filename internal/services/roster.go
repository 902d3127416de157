package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"youthministry/internal/domain"
)

type rosterService struct {
	guardianRepo   domain.GuardianRepository
	groupRepo      domain.GroupRepository
	volunteerRepo  domain.VolunteerRepository
	contextTimeout time.Duration
}

func NewRosterService(guardianRepo domain.GuardianRepository,
	groupRepo domain.GroupRepository,
	volunteerRepo domain.VolunteerRepository,
	timeout time.Duration,
) domain.RosterService {
	return &rosterService{
		guardianRepo:   guardianRepo,
		groupRepo:      groupRepo,
		volunteerRepo:  volunteerRepo,
		contextTimeout: timeout,
	}
}

func requireNames(first, last *string) error {
	*first = strings.TrimSpace(*first)
	*last = strings.TrimSpace(*last)
	if *first == "" || *last == "" {
		return domain.ValidationError("first_name and last_name are required")
	}
	return nil
}

func (s *rosterService) CreateGuardian(ctx context.Context, g *domain.Guardian) error {
	if err := requireNames(&g.FirstName, &g.LastName); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.guardianRepo.Create(ctx, g); err != nil {
		return fmt.Errorf("create guardian: %w", err)
	}
	return nil
}

func (s *rosterService) GetGuardian(ctx context.Context, id int64) (*domain.Guardian, error) {
	if id <= 0 {
		return nil, domain.ValidationError("guardian id must be a positive integer")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	g, err := s.guardianRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get guardian: %w", err)
	}
	return g, nil
}

func (s *rosterService) ListGuardians(ctx context.Context) ([]*domain.Guardian, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	guardians, err := s.guardianRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guardians: %w", err)
	}
	if guardians == nil {
		guardians = []*domain.Guardian{}
	}
	return guardians, nil
}

func (s *rosterService) CreateGroup(ctx context.Context, g *domain.Group) error {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return domain.ValidationError("name is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.groupRepo.Create(ctx, g); err != nil {
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

func (s *rosterService) ListGroups(ctx context.Context) ([]*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	if groups == nil {
		groups = []*domain.Group{}
	}
	return groups, nil
}

func (s *rosterService) CreateVolunteer(ctx context.Context, v *domain.Volunteer) error {
	if err := requireNames(&v.FirstName, &v.LastName); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.volunteerRepo.Create(ctx, v); err != nil {
		return fmt.Errorf("create volunteer: %w", err)
	}
	return nil
}

func (s *rosterService) ListVolunteers(ctx context.Context) ([]*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	volunteers, err := s.volunteerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	if volunteers == nil {
		volunteers = []*domain.Volunteer{}
	}
	return volunteers, nil
}
