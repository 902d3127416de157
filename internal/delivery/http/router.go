package http

import (
	"net/http"

	"youthministry/internal/delivery/http/controllers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Checkins *controllers.CheckinController
	Events   *controllers.EventController
	Students *controllers.StudentController
	Roster   *controllers.RosterController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Check-ins and attendance
	mux.HandleFunc("POST /checkins", c.Checkins.CheckIn)
	mux.HandleFunc("GET /events/{eventID}/checkins", c.Checkins.ListCheckins)
	mux.HandleFunc("DELETE /events/{eventID}/checkins", c.Checkins.ClearCheckins)
	mux.HandleFunc("POST /events/{eventID}/attendance", c.Checkins.PersistAttendance)
	mux.HandleFunc("GET /events/{eventID}/attendance", c.Events.ListAttendance)

	// Events
	mux.HandleFunc("GET /events", c.Events.ListEvents)
	mux.HandleFunc("POST /events", c.Events.CreateEvent)
	mux.HandleFunc("GET /events/{eventID}", c.Events.GetEvent)
	mux.HandleFunc("PATCH /events/{eventID}", c.Events.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", c.Events.DeleteEvent)
	mux.HandleFunc("GET /events/{eventID}/details", c.Events.GetEventDetails)
	mux.HandleFunc("GET /events/{eventID}/notes", c.Events.ListMeetingNotes)
	mux.HandleFunc("POST /events/{eventID}/notes", c.Events.AddMeetingNote)
	mux.HandleFunc("GET /event-types", c.Events.ListEventTypes)
	mux.HandleFunc("POST /event-types", c.Events.CreateEventType)

	// Students
	mux.HandleFunc("GET /students", c.Students.ListStudents)
	mux.HandleFunc("POST /students", c.Students.CreateStudent)
	mux.HandleFunc("GET /students/{studentID}", c.Students.GetStudent)
	mux.HandleFunc("PATCH /students/{studentID}", c.Students.UpdateStudent)
	mux.HandleFunc("DELETE /students/{studentID}", c.Students.DeleteStudent)
	mux.HandleFunc("GET /students/{studentID}/attendance", c.Students.ListStudentAttendance)

	// Roster
	mux.HandleFunc("GET /guardians", c.Roster.ListGuardians)
	mux.HandleFunc("POST /guardians", c.Roster.CreateGuardian)
	mux.HandleFunc("GET /guardians/{guardianID}", c.Roster.GetGuardian)
	mux.HandleFunc("GET /groups", c.Roster.ListGroups)
	mux.HandleFunc("POST /groups", c.Roster.CreateGroup)
	mux.HandleFunc("GET /volunteers", c.Roster.ListVolunteers)
	mux.HandleFunc("POST /volunteers", c.Roster.CreateVolunteer)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
