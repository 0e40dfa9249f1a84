package domain

import (
	"errors"
	"strings"
	"time"

	sharedDomain "github.com/avancini-tools/studyhall/internal/shared/domain"
	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used on the wire and in storage.
const DateLayout = "2006-01-02"

const (
	maxTopicLength       = 100
	maxMeetingTypeLength = 50
)

// Default attendance figures applied when a create request omits them.
const (
	DefaultDuration            = 60
	DefaultInvitedStudents     = 10
	DefaultAcceptedInvitations = 8
)

var (
	ErrMeetingEmptyTopic     = errors.New("meeting topic cannot be empty")
	ErrMeetingTopicTooLong   = errors.New("meeting topic cannot exceed 100 characters")
	ErrMeetingEmptyType      = errors.New("meeting type cannot be empty")
	ErrMeetingTypeTooLong    = errors.New("meeting type cannot exceed 50 characters")
	ErrMeetingInvalidDate    = errors.New("meeting date is required")
	ErrMeetingInvalidCounts  = errors.New("invitation counts cannot be negative")
	ErrMeetingInvalidMinutes = errors.New("duration must be positive")
)

// Meeting is a recorded meeting with its attendance figures.
type Meeting struct {
	sharedDomain.BaseEntity
	topic               string
	date                time.Time
	duration            int
	invitedStudents     int
	acceptedInvitations int
	meetingType         string
}

// NewMeeting creates a new meeting. Duration is in whole minutes.
// Whether acceptedInvitations exceeds invitedStudents is deliberately not
// checked; the report query guards against inconsistent rows instead.
func NewMeeting(topic string, date time.Time, duration, invitedStudents, acceptedInvitations int, meetingType string) (*Meeting, error) {
	topic = strings.TrimSpace(topic)
	meetingType = strings.TrimSpace(meetingType)

	if topic == "" {
		return nil, ErrMeetingEmptyTopic
	}
	if len(topic) > maxTopicLength {
		return nil, ErrMeetingTopicTooLong
	}
	if meetingType == "" {
		return nil, ErrMeetingEmptyType
	}
	if len(meetingType) > maxMeetingTypeLength {
		return nil, ErrMeetingTypeTooLong
	}
	if date.IsZero() {
		return nil, ErrMeetingInvalidDate
	}
	if duration <= 0 {
		return nil, ErrMeetingInvalidMinutes
	}
	if invitedStudents < 0 || acceptedInvitations < 0 {
		return nil, ErrMeetingInvalidCounts
	}

	return &Meeting{
		BaseEntity:          sharedDomain.NewBaseEntity(),
		topic:               topic,
		date:                truncateToDate(date),
		duration:            duration,
		invitedStudents:     invitedStudents,
		acceptedInvitations: acceptedInvitations,
		meetingType:         meetingType,
	}, nil
}

// Getters
func (m *Meeting) Topic() string            { return m.topic }
func (m *Meeting) Date() time.Time          { return m.date }
func (m *Meeting) Duration() int            { return m.duration }
func (m *Meeting) InvitedStudents() int     { return m.invitedStudents }
func (m *Meeting) AcceptedInvitations() int { return m.acceptedInvitations }
func (m *Meeting) MeetingType() string      { return m.meetingType }

// DateString returns the meeting date as an ISO 8601 calendar date.
func (m *Meeting) DateString() string {
	return m.date.Format(DateLayout)
}

// SetTopic updates the meeting topic.
func (m *Meeting) SetTopic(topic string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return ErrMeetingEmptyTopic
	}
	if len(topic) > maxTopicLength {
		return ErrMeetingTopicTooLong
	}
	m.topic = topic
	m.Touch()
	return nil
}

// SetDate updates the meeting date.
func (m *Meeting) SetDate(date time.Time) error {
	if date.IsZero() {
		return ErrMeetingInvalidDate
	}
	m.date = truncateToDate(date)
	m.Touch()
	return nil
}

// SetDuration updates the duration in minutes.
func (m *Meeting) SetDuration(duration int) error {
	if duration <= 0 {
		return ErrMeetingInvalidMinutes
	}
	m.duration = duration
	m.Touch()
	return nil
}

// SetInvitedStudents updates the invited count.
func (m *Meeting) SetInvitedStudents(count int) error {
	if count < 0 {
		return ErrMeetingInvalidCounts
	}
	m.invitedStudents = count
	m.Touch()
	return nil
}

// SetAcceptedInvitations updates the accepted count.
func (m *Meeting) SetAcceptedInvitations(count int) error {
	if count < 0 {
		return ErrMeetingInvalidCounts
	}
	m.acceptedInvitations = count
	m.Touch()
	return nil
}

// SetMeetingType updates the meeting type.
func (m *Meeting) SetMeetingType(meetingType string) error {
	meetingType = strings.TrimSpace(meetingType)
	if meetingType == "" {
		return ErrMeetingEmptyType
	}
	if len(meetingType) > maxMeetingTypeLength {
		return ErrMeetingTypeTooLong
	}
	m.meetingType = meetingType
	m.Touch()
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RehydrateMeeting recreates a meeting from persisted state.
func RehydrateMeeting(
	id uuid.UUID,
	topic string,
	date time.Time,
	duration int,
	invitedStudents int,
	acceptedInvitations int,
	meetingType string,
	createdAt time.Time,
	updatedAt time.Time,
) *Meeting {
	return &Meeting{
		BaseEntity:          sharedDomain.RehydrateBaseEntity(id, createdAt, updatedAt),
		topic:               topic,
		date:                truncateToDate(date),
		duration:            duration,
		invitedStudents:     invitedStudents,
		acceptedInvitations: acceptedInvitations,
		meetingType:         meetingType,
	}
}
