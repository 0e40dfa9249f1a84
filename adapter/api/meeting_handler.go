package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avancini-tools/studyhall/internal/meetings/application/commands"
	"github.com/avancini-tools/studyhall/internal/meetings/application/queries"
	"github.com/google/uuid"
)

// MeetingHandler handles meeting API requests.
type MeetingHandler struct {
	createMeeting    *commands.CreateMeetingHandler
	updateMeeting    *commands.UpdateMeetingHandler
	deleteMeeting    *commands.DeleteMeetingHandler
	listMeetings     *queries.ListMeetingsHandler
	attendanceReport *queries.AttendanceReportHandler
	logger           *slog.Logger
}

// MeetingHandlerConfig holds dependencies for the meeting handler.
type MeetingHandlerConfig struct {
	CreateMeeting    *commands.CreateMeetingHandler
	UpdateMeeting    *commands.UpdateMeetingHandler
	DeleteMeeting    *commands.DeleteMeetingHandler
	ListMeetings     *queries.ListMeetingsHandler
	AttendanceReport *queries.AttendanceReportHandler
	Logger           *slog.Logger
}

// NewMeetingHandler creates a new meeting handler.
func NewMeetingHandler(cfg MeetingHandlerConfig) *MeetingHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &MeetingHandler{
		createMeeting:    cfg.CreateMeeting,
		updateMeeting:    cfg.UpdateMeeting,
		deleteMeeting:    cfg.DeleteMeeting,
		listMeetings:     cfg.ListMeetings,
		attendanceReport: cfg.AttendanceReport,
		logger:           cfg.Logger,
	}
}

type addMeetingRequest struct {
	Topic               string `json:"topic"`
	Date                string `json:"date"`
	Duration            *int   `json:"duration"`
	InvitedStudents     *int   `json:"invited_students"`
	AcceptedInvitations *int   `json:"accepted_invitations"`
	MeetingType         string `json:"meeting_type"`
}

type updateMeetingRequest struct {
	Topic               *string `json:"topic"`
	Date                *string `json:"date"`
	Duration            *int    `json:"duration"`
	InvitedStudents     *int    `json:"invited_students"`
	AcceptedInvitations *int    `json:"accepted_invitations"`
	MeetingType         *string `json:"meeting_type"`
}

// AddMeeting handles POST /meetings
func (h *MeetingHandler) AddMeeting(w http.ResponseWriter, r *http.Request) {
	var req addMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to add meeting", err.Error())
		return
	}

	result, err := h.createMeeting.Handle(r.Context(), commands.CreateMeetingCommand{
		Topic:               req.Topic,
		Date:                req.Date,
		MeetingType:         req.MeetingType,
		Duration:            req.Duration,
		InvitedStudents:     req.InvitedStudents,
		AcceptedInvitations: req.AcceptedInvitations,
	})
	if err != nil {
		h.logger.Error("failed to add meeting", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to add meeting", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Meeting added successfully",
		"id":      result.MeetingID,
	})
}

// ListMeetings handles GET /meetings
func (h *MeetingHandler) ListMeetings(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.listMeetings.Handle(r.Context())
	if err != nil {
		h.logger.Error("failed to list meetings", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to list meetings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, meetings)
}

// UpdateMeeting handles PUT /meetings/{id}
func (h *MeetingHandler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Meeting not found")
		return
	}

	var req updateMeetingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Failed to update meeting", err.Error())
		return
	}

	updated, err := h.updateMeeting.Handle(r.Context(), commands.UpdateMeetingCommand{
		MeetingID:           id,
		Topic:               req.Topic,
		Date:                req.Date,
		MeetingType:         req.MeetingType,
		Duration:            req.Duration,
		InvitedStudents:     req.InvitedStudents,
		AcceptedInvitations: req.AcceptedInvitations,
	})
	if err != nil {
		if errors.Is(err, commands.ErrMeetingNotFound) {
			writeMessage(w, http.StatusNotFound, "Meeting not found")
			return
		}
		h.logger.Error("failed to update meeting", "meeting_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "Failed to update meeting", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, queries.NewMeetingDTO(updated))
}

// DeleteMeeting handles DELETE /meetings/{id}
func (h *MeetingHandler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Meeting not found")
		return
	}

	if err := h.deleteMeeting.Handle(r.Context(), commands.DeleteMeetingCommand{MeetingID: id}); err != nil {
		if errors.Is(err, commands.ErrMeetingNotFound) {
			writeMessage(w, http.StatusNotFound, "Meeting not found")
			return
		}
		h.logger.Error("failed to delete meeting", "meeting_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "Failed to delete meeting", err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Meeting deleted successfully")
}

// AttendanceReport handles GET /meetings/report
func (h *MeetingHandler) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	report, err := h.attendanceReport.Handle(r.Context(), queries.AttendanceReportQuery{Date: date})
	if err != nil {
		h.logger.Error("failed to generate report", "date", date, "error", err)
		writeError(w, http.StatusBadRequest, "Failed to generate report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"report": report,
	})
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
