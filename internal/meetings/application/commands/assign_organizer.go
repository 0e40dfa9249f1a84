package commands

import (
	"context"
	"errors"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	sharedApplication "github.com/avancini-tools/studyhall/internal/shared/application"
	"github.com/google/uuid"
)

var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrOrganizerAlreadyExists = errors.New("student already organizes this meeting")
)

// AssignOrganizerCommand links a student to a meeting as organizer.
type AssignOrganizerCommand struct {
	MeetingID uuid.UUID
	StudentID uuid.UUID
}

// AssignOrganizerHandler handles the AssignOrganizerCommand.
type AssignOrganizerHandler struct {
	meetings   domain.Repository
	students   domain.StudentRepository
	organizers domain.OrganizerRepository
	uow        sharedApplication.UnitOfWork
}

// NewAssignOrganizerHandler creates a new AssignOrganizerHandler.
func NewAssignOrganizerHandler(
	meetings domain.Repository,
	students domain.StudentRepository,
	organizers domain.OrganizerRepository,
	uow sharedApplication.UnitOfWork,
) *AssignOrganizerHandler {
	return &AssignOrganizerHandler{
		meetings:   meetings,
		students:   students,
		organizers: organizers,
		uow:        uow,
	}
}

// Handle executes the AssignOrganizerCommand.
func (h *AssignOrganizerHandler) Handle(ctx context.Context, cmd AssignOrganizerCommand) error {
	return sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		meeting, err := h.meetings.FindByID(txCtx, cmd.MeetingID)
		if err != nil {
			return err
		}
		if meeting == nil {
			return ErrMeetingNotFound
		}

		student, err := h.students.FindByID(txCtx, cmd.StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			return ErrStudentNotFound
		}

		existing, err := h.organizers.Find(txCtx, cmd.MeetingID, cmd.StudentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrOrganizerAlreadyExists
		}

		return h.organizers.Add(txCtx, domain.NewOrganizer(cmd.MeetingID, cmd.StudentID))
	})
}
