package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	sharedApplication "github.com/avancini-tools/studyhall/internal/shared/application"
	"github.com/google/uuid"
)

// CreateMeetingCommand contains the data needed to create a meeting.
// Nil pointer fields take the documented defaults.
type CreateMeetingCommand struct {
	Topic               string
	Date                string
	MeetingType         string
	Duration            *int
	InvitedStudents     *int
	AcceptedInvitations *int
}

// CreateMeetingResult contains the result of creating a meeting.
type CreateMeetingResult struct {
	MeetingID uuid.UUID
}

// CreateMeetingHandler handles the CreateMeetingCommand.
type CreateMeetingHandler struct {
	repo domain.Repository
	uow  sharedApplication.UnitOfWork
}

// NewCreateMeetingHandler creates a new CreateMeetingHandler.
func NewCreateMeetingHandler(repo domain.Repository, uow sharedApplication.UnitOfWork) *CreateMeetingHandler {
	return &CreateMeetingHandler{repo: repo, uow: uow}
}

// Handle executes the CreateMeetingCommand.
func (h *CreateMeetingHandler) Handle(ctx context.Context, cmd CreateMeetingCommand) (*CreateMeetingResult, error) {
	var result *CreateMeetingResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		date, err := parseDate(cmd.Date)
		if err != nil {
			return err
		}

		meeting, err := domain.NewMeeting(
			cmd.Topic,
			date,
			valueOrDefault(cmd.Duration, domain.DefaultDuration),
			valueOrDefault(cmd.InvitedStudents, domain.DefaultInvitedStudents),
			valueOrDefault(cmd.AcceptedInvitations, domain.DefaultAcceptedInvitations),
			cmd.MeetingType,
		)
		if err != nil {
			return err
		}

		if err := h.repo.Save(txCtx, meeting); err != nil {
			return err
		}

		result = &CreateMeetingResult{MeetingID: meeting.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date, use YYYY-MM-DD: %w", err)
	}
	return parsed, nil
}

func valueOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
