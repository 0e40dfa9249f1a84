package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avancini-tools/studyhall/internal/meetings/application/commands"
	"github.com/avancini-tools/studyhall/internal/meetings/application/queries"
	"github.com/google/uuid"
)

// OrganizerHandler handles meeting organizer API requests.
type OrganizerHandler struct {
	assignOrganizer *commands.AssignOrganizerHandler
	removeOrganizer *commands.RemoveOrganizerHandler
	listOrganizers  *queries.ListOrganizersHandler
	logger          *slog.Logger
}

// OrganizerHandlerConfig holds dependencies for the organizer handler.
type OrganizerHandlerConfig struct {
	AssignOrganizer *commands.AssignOrganizerHandler
	RemoveOrganizer *commands.RemoveOrganizerHandler
	ListOrganizers  *queries.ListOrganizersHandler
	Logger          *slog.Logger
}

// NewOrganizerHandler creates a new organizer handler.
func NewOrganizerHandler(cfg OrganizerHandlerConfig) *OrganizerHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &OrganizerHandler{
		assignOrganizer: cfg.AssignOrganizer,
		removeOrganizer: cfg.RemoveOrganizer,
		listOrganizers:  cfg.ListOrganizers,
		logger:          cfg.Logger,
	}
}

type addOrganizerRequest struct {
	StudentID string `json:"student_id"`
}

// AddOrganizer handles POST /meetings/{id}/organizers
func (h *OrganizerHandler) AddOrganizer(w http.ResponseWriter, r *http.Request) {
	meetingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Meeting not found")
		return
	}

	var req addOrganizerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to add organizer", err.Error())
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to add organizer", "invalid student_id")
		return
	}

	err = h.assignOrganizer.Handle(r.Context(), commands.AssignOrganizerCommand{
		MeetingID: meetingID,
		StudentID: studentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMeetingNotFound):
			writeMessage(w, http.StatusNotFound, "Meeting not found")
		case errors.Is(err, commands.ErrStudentNotFound):
			writeMessage(w, http.StatusNotFound, "Student not found")
		default:
			h.logger.Error("failed to add organizer", "meeting_id", meetingID, "student_id", studentID, "error", err)
			writeError(w, http.StatusBadRequest, "Failed to add organizer", err.Error())
		}
		return
	}

	writeMessage(w, http.StatusCreated, "Organizer added successfully")
}

// ListOrganizers handles GET /meetings/{id}/organizers
func (h *OrganizerHandler) ListOrganizers(w http.ResponseWriter, r *http.Request) {
	meetingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Meeting not found")
		return
	}

	students, err := h.listOrganizers.Handle(r.Context(), queries.ListOrganizersQuery{MeetingID: meetingID})
	if err != nil {
		if errors.Is(err, queries.ErrMeetingNotFound) {
			writeMessage(w, http.StatusNotFound, "Meeting not found")
			return
		}
		h.logger.Error("failed to list organizers", "meeting_id", meetingID, "error", err)
		writeError(w, http.StatusBadRequest, "Failed to list organizers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, students)
}

// RemoveOrganizer handles DELETE /meetings/{id}/organizers/{studentID}
func (h *OrganizerHandler) RemoveOrganizer(w http.ResponseWriter, r *http.Request) {
	meetingID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Meeting not found")
		return
	}

	studentID, err := uuid.Parse(r.PathValue("studentID"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Organizer not found")
		return
	}

	err = h.removeOrganizer.Handle(r.Context(), commands.RemoveOrganizerCommand{
		MeetingID: meetingID,
		StudentID: studentID,
	})
	if err != nil {
		if errors.Is(err, commands.ErrOrganizerNotFound) {
			writeMessage(w, http.StatusNotFound, "Organizer not found")
			return
		}
		h.logger.Error("failed to remove organizer", "meeting_id", meetingID, "student_id", studentID, "error", err)
		writeError(w, http.StatusBadRequest, "Failed to remove organizer", err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Organizer removed successfully")
}
