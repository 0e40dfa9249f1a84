package domain

import (
	"time"

	sharedDomain "github.com/avancini-tools/studyhall/internal/shared/domain"
	"github.com/google/uuid"
)

// Organizer links a student to a meeting they organize. It is a dependent
// join entity: its rows cascade with both parents.
type Organizer struct {
	sharedDomain.BaseEntity
	meetingID uuid.UUID
	studentID uuid.UUID
}

// NewOrganizer creates a new organizer link.
func NewOrganizer(meetingID, studentID uuid.UUID) *Organizer {
	return &Organizer{
		BaseEntity: sharedDomain.NewBaseEntity(),
		meetingID:  meetingID,
		studentID:  studentID,
	}
}

// MeetingID returns the linked meeting id.
func (o *Organizer) MeetingID() uuid.UUID { return o.meetingID }

// StudentID returns the linked student id.
func (o *Organizer) StudentID() uuid.UUID { return o.studentID }

// RehydrateOrganizer recreates an organizer link from persisted state.
func RehydrateOrganizer(id, meetingID, studentID uuid.UUID, createdAt time.Time) *Organizer {
	return &Organizer{
		BaseEntity: sharedDomain.RehydrateBaseEntity(id, createdAt, createdAt),
		meetingID:  meetingID,
		studentID:  studentID,
	}
}
