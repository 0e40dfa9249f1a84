package queries

import (
	"context"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
)

// MeetingDTO is the record representation returned to API callers.
type MeetingDTO struct {
	ID                  uuid.UUID `json:"id"`
	Topic               string    `json:"topic"`
	Date                string    `json:"date"`
	Duration            int       `json:"duration"`
	InvitedStudents     int       `json:"invited_students"`
	AcceptedInvitations int       `json:"accepted_invitations"`
	MeetingType         string    `json:"meeting_type"`
}

// NewMeetingDTO maps a meeting to its record representation.
func NewMeetingDTO(meeting *domain.Meeting) MeetingDTO {
	return MeetingDTO{
		ID:                  meeting.ID(),
		Topic:               meeting.Topic(),
		Date:                meeting.DateString(),
		Duration:            meeting.Duration(),
		InvitedStudents:     meeting.InvitedStudents(),
		AcceptedInvitations: meeting.AcceptedInvitations(),
		MeetingType:         meeting.MeetingType(),
	}
}

// ListMeetingsHandler returns every meeting as a record representation.
type ListMeetingsHandler struct {
	repo domain.Repository
}

// NewListMeetingsHandler creates a new ListMeetingsHandler.
func NewListMeetingsHandler(repo domain.Repository) *ListMeetingsHandler {
	return &ListMeetingsHandler{repo: repo}
}

// Handle executes the list query.
func (h *ListMeetingsHandler) Handle(ctx context.Context) ([]MeetingDTO, error) {
	meetings, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]MeetingDTO, 0, len(meetings))
	for _, meeting := range meetings {
		dtos = append(dtos, NewMeetingDTO(meeting))
	}

	return dtos, nil
}
