package queries

import (
	"context"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
)

// StudentDTO is the flat shape returned for a student.
type StudentDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewStudentDTO maps a student to its response shape.
func NewStudentDTO(student *domain.Student) StudentDTO {
	return StudentDTO{
		ID:   student.ID(),
		Name: student.Name(),
	}
}

// ListStudentsHandler returns every registered student.
type ListStudentsHandler struct {
	students domain.StudentRepository
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(students domain.StudentRepository) *ListStudentsHandler {
	return &ListStudentsHandler{students: students}
}

// Handle executes the list query.
func (h *ListStudentsHandler) Handle(ctx context.Context) ([]StudentDTO, error) {
	students, err := h.students.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]StudentDTO, 0, len(students))
	for _, student := range students {
		dtos = append(dtos, NewStudentDTO(student))
	}

	return dtos, nil
}
