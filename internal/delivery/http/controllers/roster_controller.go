package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"youthministry/internal/delivery/http/helpers"
	"youthministry/internal/domain"
)

// PersonRequest is the request body for POST /guardians and POST /volunteers.
type PersonRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// Validate implements Validator.
func (p PersonRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(p.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if p.Email != nil && !strings.Contains(*p.Email, "@") {
		errs = append(errs, "email is invalid")
	}
	return errs
}

// CreateGroupRequest is the request body for POST /groups.
type CreateGroupRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Validate implements Validator.
func (c CreateGroupRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// GuardianSuccessResponse is the success response envelope for endpoints returning one guardian.
type GuardianSuccessResponse struct {
	Data  *domain.Guardian  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListGuardiansSuccessResponse is the success response envelope for GET /guardians.
type ListGuardiansSuccessResponse struct {
	Data  []*domain.Guardian `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// GroupSuccessResponse is the success response envelope for POST /groups (201).
type GroupSuccessResponse struct {
	Data  *domain.Group     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListGroupsSuccessResponse is the success response envelope for GET /groups.
type ListGroupsSuccessResponse struct {
	Data  []*domain.Group   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VolunteerSuccessResponse is the success response envelope for POST /volunteers (201).
type VolunteerSuccessResponse struct {
	Data  *domain.Volunteer `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListVolunteersSuccessResponse is the success response envelope for GET /volunteers.
type ListVolunteersSuccessResponse struct {
	Data  []*domain.Volunteer `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type RosterController struct {
	Logger  *slog.Logger
	Service domain.RosterService
}

func NewRosterController(logger *slog.Logger, svc domain.RosterService) *RosterController {
	return &RosterController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateGuardian godoc
// @Summary Create a guardian
// @Tags guardians
// @Accept json
// @Produce json
// @Param guardian body PersonRequest true "Guardian data"
// @Success 201 {object} controllers.GuardianSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /guardians [post]
func (c *RosterController) CreateGuardian(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g := &domain.Guardian{FirstName: req.FirstName, LastName: req.LastName, Phone: req.Phone, Email: req.Email}
	if err := c.Service.CreateGuardian(r.Context(), g); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "guardian not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, g)
}

// GetGuardian godoc
// @Summary Get a guardian by ID
// @Tags guardians
// @Produce json
// @Param guardianID path int true "Guardian ID"
// @Success 200 {object} controllers.GuardianSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /guardians/{guardianID} [get]
func (c *RosterController) GetGuardian(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "guardianID")
	if !ok {
		return
	}
	g, err := c.Service.GetGuardian(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "guardian not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// ListGuardians godoc
// @Summary List guardians
// @Tags guardians
// @Produce json
// @Success 200 {object} controllers.ListGuardiansSuccessResponse
// @Router /guardians [get]
func (c *RosterController) ListGuardians(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListGuardians(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "guardian not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// CreateGroup godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body CreateGroupRequest true "Group data"
// @Success 201 {object} controllers.GroupSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /groups [post]
func (c *RosterController) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g := &domain.Group{Name: req.Name, Description: req.Description}
	if err := c.Service.CreateGroup(r.Context(), g); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "group not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, g)
}

// ListGroups godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} controllers.ListGroupsSuccessResponse
// @Router /groups [get]
func (c *RosterController) ListGroups(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListGroups(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "group not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// CreateVolunteer godoc
// @Summary Create a volunteer
// @Tags volunteers
// @Accept json
// @Produce json
// @Param volunteer body PersonRequest true "Volunteer data"
// @Success 201 {object} controllers.VolunteerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /volunteers [post]
func (c *RosterController) CreateVolunteer(w http.ResponseWriter, r *http.Request) {
	var req PersonRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	v := &domain.Volunteer{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Phone: req.Phone}
	if err := c.Service.CreateVolunteer(r.Context(), v); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "volunteer not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, v)
}

// ListVolunteers godoc
// @Summary List volunteers
// @Tags volunteers
// @Produce json
// @Success 200 {object} controllers.ListVolunteersSuccessResponse
// @Router /volunteers [get]
func (c *RosterController) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.ListVolunteers(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "volunteer not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}
