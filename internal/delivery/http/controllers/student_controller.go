package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"youthministry/internal/delivery/http/helpers"
	"youthministry/internal/domain"
)

// CreateStudentRequest is the request body for POST /students.
type CreateStudentRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	GuardianID *int64 `json:"guardian_id"`
}

// Validate implements Validator.
func (c CreateStudentRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.FirstName) == "" {
		errs = append(errs, "first_name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		errs = append(errs, "last_name is required")
	}
	if c.GuardianID != nil && *c.GuardianID <= 0 {
		errs = append(errs, "guardian_id must be a positive integer")
	}
	return errs
}

// UpdateStudentRequest is the request body for PATCH /students/{studentID}. All fields optional.
type UpdateStudentRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	GuardianID *int64  `json:"guardian_id"`
}

// Validate implements Validator.
func (u UpdateStudentRequest) Validate() []string {
	var errs []string
	if u.FirstName != nil && strings.TrimSpace(*u.FirstName) == "" {
		errs = append(errs, "first_name cannot be empty")
	}
	if u.LastName != nil && strings.TrimSpace(*u.LastName) == "" {
		errs = append(errs, "last_name cannot be empty")
	}
	if u.GuardianID != nil && *u.GuardianID <= 0 {
		errs = append(errs, "guardian_id must be a positive integer")
	}
	return errs
}

// StudentSuccessResponse is the success response envelope for endpoints returning one student.
type StudentSuccessResponse struct {
	Data  *domain.Student   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListStudentsResponse is the response body for GET /students.
type ListStudentsResponse struct {
	Items      []*domain.Student      `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListStudentsSuccessResponse is the success response envelope for GET /students.
type ListStudentsSuccessResponse struct {
	Data  ListStudentsResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// StudentAttendanceSuccessResponse is the success response envelope for GET /students/{studentID}/attendance.
type StudentAttendanceSuccessResponse struct {
	Data  []*domain.StudentAttendance `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

type StudentController struct {
	Logger  *slog.Logger
	Service domain.StudentService
}

func NewStudentController(logger *slog.Logger, svc domain.StudentService) *StudentController {
	return &StudentController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateStudent godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body CreateStudentRequest true "Student data"
// @Success 201 {object} controllers.StudentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /students [post]
func (c *StudentController) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	student := domain.NewStudent(req.FirstName, req.LastName, req.GuardianID)
	if err := c.Service.CreateStudent(r.Context(), student); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "student not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, student)
}

// ListStudents godoc
// @Summary List students
// @Description Each student includes the guardian's name when one is set.
// @Tags students
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, capped at 100)"
// @Success 200 {object} controllers.ListStudentsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 503 {object} helpers.APIResponse "error.code: storage_unavailable"
// @Router /students [get]
func (c *StudentController) ListStudents(w http.ResponseWriter, r *http.Request) {
	params, ok := helpers.ParsePagination(w, r)
	if !ok {
		return
	}
	page, err := c.Service.ListStudents(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "student not found")
		return
	}
	meta := helpers.PageMeta(params, page)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListStudentsResponse{Items: page.Items, Pagination: meta})
}

// GetStudent godoc
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Param studentID path int true "Student ID"
// @Success 200 {object} controllers.StudentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /students/{studentID} [get]
func (c *StudentController) GetStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := helpers.PathID(w, r, "studentID")
	if !ok {
		return
	}
	student, err := c.Service.GetStudent(r.Context(), studentID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "student not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// UpdateStudent godoc
// @Summary Update a student
// @Description Partial update; omitted fields are unchanged.
// @Tags students
// @Accept json
// @Produce json
// @Param studentID path int true "Student ID"
// @Param student body UpdateStudentRequest true "Fields to change"
// @Success 200 {object} controllers.StudentSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /students/{studentID} [patch]
func (c *StudentController) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := helpers.PathID(w, r, "studentID")
	if !ok {
		return
	}
	var req UpdateStudentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	update := domain.StudentUpdate{FirstName: req.FirstName, LastName: req.LastName, GuardianID: req.GuardianID}
	student, err := c.Service.UpdateStudent(r.Context(), studentID, update)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "student not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Description Deletes the student and their attendance records.
// @Tags students
// @Param studentID path int true "Student ID"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /students/{studentID} [delete]
func (c *StudentController) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := helpers.PathID(w, r, "studentID")
	if !ok {
		return
	}
	if err := c.Service.DeleteStudent(r.Context(), studentID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "student not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListStudentAttendance godoc
// @Summary List a student's attendance history
// @Description Most recent first, with each event's type.
// @Tags students
// @Produce json
// @Param studentID path int true "Student ID"
// @Success 200 {object} controllers.StudentAttendanceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /students/{studentID}/attendance [get]
func (c *StudentController) ListStudentAttendance(w http.ResponseWriter, r *http.Request) {
	studentID, ok := helpers.PathID(w, r, "studentID")
	if !ok {
		return
	}
	history, err := c.Service.ListStudentAttendance(r.Context(), studentID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "student not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, history)
}
