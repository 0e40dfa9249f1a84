package domain

import (
	"errors"
	"strings"
	"time"

	sharedDomain "github.com/avancini-tools/studyhall/internal/shared/domain"
	"github.com/google/uuid"
)

const maxStudentNameLength = 50

var (
	ErrStudentEmptyName   = errors.New("student name cannot be empty")
	ErrStudentNameTooLong = errors.New("student name cannot exceed 50 characters")
)

// Student is a registered student who may organize meetings.
type Student struct {
	sharedDomain.BaseEntity
	name string
}

// NewStudent creates a new student.
func NewStudent(name string) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrStudentEmptyName
	}
	if len(name) > maxStudentNameLength {
		return nil, ErrStudentNameTooLong
	}

	return &Student{
		BaseEntity: sharedDomain.NewBaseEntity(),
		name:       name,
	}, nil
}

// Name returns the student name.
func (s *Student) Name() string { return s.name }

// RehydrateStudent recreates a student from persisted state.
func RehydrateStudent(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Student {
	return &Student{
		BaseEntity: sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		name:       name,
	}
}
