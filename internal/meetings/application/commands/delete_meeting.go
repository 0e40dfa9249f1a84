package commands

import (
	"context"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	sharedApplication "github.com/avancini-tools/studyhall/internal/shared/application"
	"github.com/google/uuid"
)

// DeleteMeetingCommand contains the data needed to delete a meeting.
type DeleteMeetingCommand struct {
	MeetingID uuid.UUID
}

// DeleteMeetingHandler handles the DeleteMeetingCommand.
type DeleteMeetingHandler struct {
	repo domain.Repository
	uow  sharedApplication.UnitOfWork
}

// NewDeleteMeetingHandler creates a new DeleteMeetingHandler.
func NewDeleteMeetingHandler(repo domain.Repository, uow sharedApplication.UnitOfWork) *DeleteMeetingHandler {
	return &DeleteMeetingHandler{repo: repo, uow: uow}
}

// Handle executes the DeleteMeetingCommand. Organizer links for the meeting
// are removed by the schema's cascade rule within the same transaction.
func (h *DeleteMeetingHandler) Handle(ctx context.Context, cmd DeleteMeetingCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		meeting, err := h.repo.FindByID(txCtx, cmd.MeetingID)
		if err != nil {
			return err
		}
		if meeting == nil {
			return ErrMeetingNotFound
		}

		return h.repo.Delete(txCtx, cmd.MeetingID)
	})
}
