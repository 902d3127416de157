package domain

import "context"

// Guardian is a parent or guardian responsible for one or more students.
// swagger:model Guardian
type Guardian struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// Group is a small group (e.g. by grade) students are organised into.
// swagger:model Group
type Group struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Volunteer is an adult leader helping run events.
// swagger:model Volunteer
type Volunteer struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// GuardianRepository defines the interface for guardian storage.
type GuardianRepository interface {
	Create(ctx context.Context, g *Guardian) error
	GetByID(ctx context.Context, id int64) (*Guardian, error)
	List(ctx context.Context) ([]*Guardian, error)
}

// GroupRepository defines the interface for group storage.
type GroupRepository interface {
	Create(ctx context.Context, g *Group) error
	List(ctx context.Context) ([]*Group, error)
}

// VolunteerRepository defines the interface for volunteer storage.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) error
	List(ctx context.Context) ([]*Volunteer, error)
}

// RosterService covers the people side of the program other than students.
type RosterService interface {
	CreateGuardian(ctx context.Context, g *Guardian) error
	GetGuardian(ctx context.Context, id int64) (*Guardian, error)
	ListGuardians(ctx context.Context) ([]*Guardian, error)
	CreateGroup(ctx context.Context, g *Group) error
	ListGroups(ctx context.Context) ([]*Group, error)
	CreateVolunteer(ctx context.Context, v *Volunteer) error
	ListVolunteers(ctx context.Context) ([]*Volunteer, error)
}
