package commands

import (
	"context"
	"errors"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	sharedApplication "github.com/avancini-tools/studyhall/internal/shared/application"
	"github.com/google/uuid"
)

var ErrMeetingNotFound = errors.New("meeting not found")

// UpdateMeetingCommand contains the data needed to update a meeting.
// Nil pointer fields leave the stored value unchanged.
type UpdateMeetingCommand struct {
	MeetingID           uuid.UUID
	Topic               *string
	Date                *string
	MeetingType         *string
	Duration            *int
	InvitedStudents     *int
	AcceptedInvitations *int
}

// UpdateMeetingHandler handles the UpdateMeetingCommand.
type UpdateMeetingHandler struct {
	repo domain.Repository
	uow  sharedApplication.UnitOfWork
}

// NewUpdateMeetingHandler creates a new UpdateMeetingHandler.
func NewUpdateMeetingHandler(repo domain.Repository, uow sharedApplication.UnitOfWork) *UpdateMeetingHandler {
	return &UpdateMeetingHandler{repo: repo, uow: uow}
}

// Handle executes the UpdateMeetingCommand and returns the updated meeting.
func (h *UpdateMeetingHandler) Handle(ctx context.Context, cmd UpdateMeetingCommand) (*domain.Meeting, error) {
	var updated *domain.Meeting

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		meeting, err := h.repo.FindByID(txCtx, cmd.MeetingID)
		if err != nil {
			return err
		}
		if meeting == nil {
			return ErrMeetingNotFound
		}

		if cmd.Topic != nil {
			if err := meeting.SetTopic(*cmd.Topic); err != nil {
				return err
			}
		}

		if cmd.Date != nil {
			date, err := parseDate(*cmd.Date)
			if err != nil {
				return err
			}
			if err := meeting.SetDate(date); err != nil {
				return err
			}
		}

		if cmd.Duration != nil {
			if err := meeting.SetDuration(*cmd.Duration); err != nil {
				return err
			}
		}

		if cmd.InvitedStudents != nil {
			if err := meeting.SetInvitedStudents(*cmd.InvitedStudents); err != nil {
				return err
			}
		}

		if cmd.AcceptedInvitations != nil {
			if err := meeting.SetAcceptedInvitations(*cmd.AcceptedInvitations); err != nil {
				return err
			}
		}

		if cmd.MeetingType != nil {
			if err := meeting.SetMeetingType(*cmd.MeetingType); err != nil {
				return err
			}
		}

		if err := h.repo.Save(txCtx, meeting); err != nil {
			return err
		}

		updated = meeting
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
