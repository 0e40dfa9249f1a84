package commands

import (
	"context"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	sharedApplication "github.com/avancini-tools/studyhall/internal/shared/application"
	"github.com/google/uuid"
)

// CreateStudentCommand contains the data needed to register a student.
type CreateStudentCommand struct {
	Name string
}

// CreateStudentResult contains the result of registering a student.
type CreateStudentResult struct {
	StudentID uuid.UUID
}

// CreateStudentHandler handles the CreateStudentCommand.
type CreateStudentHandler struct {
	students domain.StudentRepository
	uow      sharedApplication.UnitOfWork
}

// NewCreateStudentHandler creates a new CreateStudentHandler.
func NewCreateStudentHandler(students domain.StudentRepository, uow sharedApplication.UnitOfWork) *CreateStudentHandler {
	return &CreateStudentHandler{students: students, uow: uow}
}

// Handle executes the CreateStudentCommand.
func (h *CreateStudentHandler) Handle(ctx context.Context, cmd CreateStudentCommand) (*CreateStudentResult, error) {
	var result *CreateStudentResult

	err := sharedApplication.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		student, err := domain.NewStudent(cmd.Name)
		if err != nil {
			return err
		}

		if err := h.students.Save(txCtx, student); err != nil {
			return err
		}

		result = &CreateStudentResult{StudentID: student.ID()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
