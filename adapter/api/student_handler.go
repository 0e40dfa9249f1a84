package api

import (
	"log/slog"
	"net/http"

	"github.com/avancini-tools/studyhall/internal/meetings/application/commands"
	"github.com/avancini-tools/studyhall/internal/meetings/application/queries"
)

// StudentHandler handles student API requests.
type StudentHandler struct {
	createStudent *commands.CreateStudentHandler
	listStudents  *queries.ListStudentsHandler
	logger        *slog.Logger
}

// StudentHandlerConfig holds dependencies for the student handler.
type StudentHandlerConfig struct {
	CreateStudent *commands.CreateStudentHandler
	ListStudents  *queries.ListStudentsHandler
	Logger        *slog.Logger
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(cfg StudentHandlerConfig) *StudentHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &StudentHandler{
		createStudent: cfg.CreateStudent,
		listStudents:  cfg.ListStudents,
		logger:        cfg.Logger,
	}
}

type addStudentRequest struct {
	Name string `json:"name"`
}

// AddStudent handles POST /students
func (h *StudentHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	var req addStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to add student", err.Error())
		return
	}

	result, err := h.createStudent.Handle(r.Context(), commands.CreateStudentCommand{Name: req.Name})
	if err != nil {
		h.logger.Error("failed to add student", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to add student", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Student added successfully",
		"id":      result.StudentID,
	})
}

// ListStudents handles GET /students
func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.listStudents.Handle(r.Context())
	if err != nil {
		h.logger.Error("failed to list students", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to list students", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, students)
}
