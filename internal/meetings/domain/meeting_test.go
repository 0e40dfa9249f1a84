package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate(t *testing.T) time.Time {
	t.Helper()
	date, err := time.Parse(DateLayout, "2024-11-01")
	require.NoError(t, err)
	return date
}

func TestNewMeeting(t *testing.T) {
	t.Run("creates a valid meeting", func(t *testing.T) {
		meeting, err := NewMeeting("Project Kickoff", testDate(t), 60, 10, 8, "Kickoff")

		require.NoError(t, err)
		require.NotNil(t, meeting)
		assert.NotEqual(t, uuid.Nil, meeting.ID())
		assert.Equal(t, "Project Kickoff", meeting.Topic())
		assert.Equal(t, "2024-11-01", meeting.DateString())
		assert.Equal(t, 60, meeting.Duration())
		assert.Equal(t, 10, meeting.InvitedStudents())
		assert.Equal(t, 8, meeting.AcceptedInvitations())
		assert.Equal(t, "Kickoff", meeting.MeetingType())
	})

	t.Run("trims topic and meeting type", func(t *testing.T) {
		meeting, err := NewMeeting("  Weekly Sync  ", testDate(t), 45, 15, 12, "  Sync  ")

		require.NoError(t, err)
		assert.Equal(t, "Weekly Sync", meeting.Topic())
		assert.Equal(t, "Sync", meeting.MeetingType())
	})

	t.Run("truncates date to midnight UTC", func(t *testing.T) {
		at := time.Date(2024, 11, 1, 15, 30, 45, 0, time.UTC)
		meeting, err := NewMeeting("Sync", at, 30, 5, 5, "Sync")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), meeting.Date())
	})

	t.Run("fails with empty topic", func(t *testing.T) {
		_, err := NewMeeting("", testDate(t), 60, 10, 8, "Kickoff")
		assert.ErrorIs(t, err, ErrMeetingEmptyTopic)
	})

	t.Run("fails with topic over 100 characters", func(t *testing.T) {
		_, err := NewMeeting(strings.Repeat("a", 101), testDate(t), 60, 10, 8, "Kickoff")
		assert.ErrorIs(t, err, ErrMeetingTopicTooLong)
	})

	t.Run("fails with empty meeting type", func(t *testing.T) {
		_, err := NewMeeting("Kickoff", testDate(t), 60, 10, 8, "   ")
		assert.ErrorIs(t, err, ErrMeetingEmptyType)
	})

	t.Run("fails with meeting type over 50 characters", func(t *testing.T) {
		_, err := NewMeeting("Kickoff", testDate(t), 60, 10, 8, strings.Repeat("b", 51))
		assert.ErrorIs(t, err, ErrMeetingTypeTooLong)
	})

	t.Run("fails with zero date", func(t *testing.T) {
		_, err := NewMeeting("Kickoff", time.Time{}, 60, 10, 8, "Kickoff")
		assert.ErrorIs(t, err, ErrMeetingInvalidDate)
	})

	t.Run("fails with non-positive duration", func(t *testing.T) {
		_, err := NewMeeting("Kickoff", testDate(t), 0, 10, 8, "Kickoff")
		assert.ErrorIs(t, err, ErrMeetingInvalidMinutes)

		_, err = NewMeeting("Kickoff", testDate(t), -30, 10, 8, "Kickoff")
		assert.ErrorIs(t, err, ErrMeetingInvalidMinutes)
	})

	t.Run("fails with negative counts", func(t *testing.T) {
		_, err := NewMeeting("Kickoff", testDate(t), 60, -1, 8, "Kickoff")
		assert.ErrorIs(t, err, ErrMeetingInvalidCounts)

		_, err = NewMeeting("Kickoff", testDate(t), 60, 10, -1, "Kickoff")
		assert.ErrorIs(t, err, ErrMeetingInvalidCounts)
	})

	t.Run("allows accepted above invited", func(t *testing.T) {
		meeting, err := NewMeeting("Overbooked", testDate(t), 60, 5, 9, "Sync")

		require.NoError(t, err)
		assert.Equal(t, 9, meeting.AcceptedInvitations())
	})
}

func TestMeeting_Setters(t *testing.T) {
	newMeeting := func(t *testing.T) *Meeting {
		t.Helper()
		meeting, err := NewMeeting("Project Kickoff", testDate(t), 60, 10, 8, "Kickoff")
		require.NoError(t, err)
		return meeting
	}

	t.Run("SetTopic updates and touches", func(t *testing.T) {
		meeting := newMeeting(t)
		before := meeting.UpdatedAt()

		require.NoError(t, meeting.SetTopic("Renamed"))
		assert.Equal(t, "Renamed", meeting.Topic())
		assert.False(t, meeting.UpdatedAt().Before(before))
	})

	t.Run("SetTopic rejects empty", func(t *testing.T) {
		meeting := newMeeting(t)
		assert.ErrorIs(t, meeting.SetTopic("  "), ErrMeetingEmptyTopic)
		assert.Equal(t, "Project Kickoff", meeting.Topic())
	})

	t.Run("SetDate truncates to midnight", func(t *testing.T) {
		meeting := newMeeting(t)
		require.NoError(t, meeting.SetDate(time.Date(2024, 12, 24, 18, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2024-12-24", meeting.DateString())
	})

	t.Run("SetDuration rejects zero", func(t *testing.T) {
		meeting := newMeeting(t)
		assert.ErrorIs(t, meeting.SetDuration(0), ErrMeetingInvalidMinutes)
	})

	t.Run("SetInvitedStudents rejects negative", func(t *testing.T) {
		meeting := newMeeting(t)
		assert.ErrorIs(t, meeting.SetInvitedStudents(-1), ErrMeetingInvalidCounts)
	})

	t.Run("SetAcceptedInvitations accepts zero", func(t *testing.T) {
		meeting := newMeeting(t)
		require.NoError(t, meeting.SetAcceptedInvitations(0))
		assert.Equal(t, 0, meeting.AcceptedInvitations())
	})

	t.Run("SetMeetingType rejects too long", func(t *testing.T) {
		meeting := newMeeting(t)
		assert.ErrorIs(t, meeting.SetMeetingType(strings.Repeat("c", 51)), ErrMeetingTypeTooLong)
	})
}

func TestRehydrateMeeting(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 10, 2, 9, 0, 0, 0, time.UTC)

	meeting := RehydrateMeeting(id, "Weekly Sync", testDate(t), 45, 15, 12, "Sync", created, updated)

	assert.Equal(t, id, meeting.ID())
	assert.Equal(t, "Weekly Sync", meeting.Topic())
	assert.Equal(t, 45, meeting.Duration())
	assert.Equal(t, created, meeting.CreatedAt())
	assert.Equal(t, updated, meeting.UpdatedAt())
}

func TestNewStudent(t *testing.T) {
	t.Run("creates a valid student", func(t *testing.T) {
		student, err := NewStudent("Ada Lovelace")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, student.ID())
		assert.Equal(t, "Ada Lovelace", student.Name())
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewStudent("   ")
		assert.ErrorIs(t, err, ErrStudentEmptyName)
	})

	t.Run("fails with name over 50 characters", func(t *testing.T) {
		_, err := NewStudent(strings.Repeat("x", 51))
		assert.ErrorIs(t, err, ErrStudentNameTooLong)
	})
}

func TestNewOrganizer(t *testing.T) {
	meetingID := uuid.New()
	studentID := uuid.New()

	organizer := NewOrganizer(meetingID, studentID)

	assert.NotEqual(t, uuid.Nil, organizer.ID())
	assert.Equal(t, meetingID, organizer.MeetingID())
	assert.Equal(t, studentID, organizer.StudentID())
}
