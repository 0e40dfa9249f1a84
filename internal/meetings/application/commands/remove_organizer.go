package commands

import (
	"context"
	"errors"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	sharedApplication "github.com/avancini-tools/studyhall/internal/shared/application"
	"github.com/google/uuid"
)

var ErrOrganizerNotFound = errors.New("organizer not found")

// RemoveOrganizerCommand unlinks a student from a meeting.
type RemoveOrganizerCommand struct {
	MeetingID uuid.UUID
	StudentID uuid.UUID
}

// RemoveOrganizerHandler handles the RemoveOrganizerCommand.
type RemoveOrganizerHandler struct {
	organizers domain.OrganizerRepository
	uow        sharedApplication.UnitOfWork
}

// NewRemoveOrganizerHandler creates a new RemoveOrganizerHandler.
func NewRemoveOrganizerHandler(organizers domain.OrganizerRepository, uow sharedApplication.UnitOfWork) *RemoveOrganizerHandler {
	return &RemoveOrganizerHandler{organizers: organizers, uow: uow}
}

// Handle executes the RemoveOrganizerCommand.
func (h *RemoveOrganizerHandler) Handle(ctx context.Context, cmd RemoveOrganizerCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		existing, err := h.organizers.Find(txCtx, cmd.MeetingID, cmd.StudentID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrOrganizerNotFound
		}

		return h.organizers.Remove(txCtx, cmd.MeetingID, cmd.StudentID)
	})
}
