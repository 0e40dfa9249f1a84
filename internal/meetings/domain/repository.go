package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for meeting persistence.
// Find methods return nil, nil when no row matches.
type Repository interface {
	Save(ctx context.Context, meeting *Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*Meeting, error)
	FindAll(ctx context.Context) ([]*Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StudentRepository defines the interface for student persistence.
type StudentRepository interface {
	Save(ctx context.Context, student *Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*Student, error)
	FindAll(ctx context.Context) ([]*Student, error)
}

// OrganizerRepository defines the interface for organizer-link persistence.
// Organizer data is fetched through explicit joins, never materialized as
// back-references on Meeting or Student.
type OrganizerRepository interface {
	Add(ctx context.Context, organizer *Organizer) error
	Find(ctx context.Context, meetingID, studentID uuid.UUID) (*Organizer, error)
	Remove(ctx context.Context, meetingID, studentID uuid.UUID) error
	StudentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*Student, error)
}

// AttendanceRow is one per-topic group of the attendance report.
type AttendanceRow struct {
	Topic                      string
	AverageDuration            float64
	AverageInvitedStudents     float64
	AverageAcceptedInvitations float64
	AverageAttendanceRate      float64
}

// ReportRepository runs the grouped attendance aggregate for one date under
// serializable isolation. The date string is bound to the query parameter
// as-is, matching the wire format.
type ReportRepository interface {
	AttendanceByDate(ctx context.Context, date string) ([]AttendanceRow, error)
}
