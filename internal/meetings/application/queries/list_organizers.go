package queries

import (
	"context"
	"errors"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
)

var ErrMeetingNotFound = errors.New("meeting not found")

// ListOrganizersQuery contains the parameters for listing a meeting's organizers.
type ListOrganizersQuery struct {
	MeetingID uuid.UUID
}

// ListOrganizersHandler lists the students organizing a meeting via an
// explicit join query.
type ListOrganizersHandler struct {
	meetings   domain.Repository
	organizers domain.OrganizerRepository
}

// NewListOrganizersHandler creates a new ListOrganizersHandler.
func NewListOrganizersHandler(meetings domain.Repository, organizers domain.OrganizerRepository) *ListOrganizersHandler {
	return &ListOrganizersHandler{meetings: meetings, organizers: organizers}
}

// Handle executes the list query.
func (h *ListOrganizersHandler) Handle(ctx context.Context, query ListOrganizersQuery) ([]StudentDTO, error) {
	meeting, err := h.meetings.FindByID(ctx, query.MeetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, ErrMeetingNotFound
	}

	students, err := h.organizers.StudentsByMeeting(ctx, query.MeetingID)
	if err != nil {
		return nil, err
	}

	dtos := make([]StudentDTO, 0, len(students))
	for _, student := range students {
		dtos = append(dtos, NewStudentDTO(student))
	}

	return dtos, nil
}
