package queries

import (
	"context"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockMeetingRepo is a mock implementation of domain.Repository.
type mockMeetingRepo struct {
	mock.Mock
}

func (m *mockMeetingRepo) Save(ctx context.Context, meeting *domain.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *mockMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Meeting), args.Error(1)
}

func (m *mockMeetingRepo) FindAll(ctx context.Context) ([]*domain.Meeting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Meeting), args.Error(1)
}

func (m *mockMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockStudentRepo is a mock implementation of domain.StudentRepository.
type mockStudentRepo struct {
	mock.Mock
}

func (m *mockStudentRepo) Save(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *mockStudentRepo) FindAll(ctx context.Context) ([]*domain.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Student), args.Error(1)
}

// mockOrganizerRepo is a mock implementation of domain.OrganizerRepository.
type mockOrganizerRepo struct {
	mock.Mock
}

func (m *mockOrganizerRepo) Add(ctx context.Context, organizer *domain.Organizer) error {
	args := m.Called(ctx, organizer)
	return args.Error(0)
}

func (m *mockOrganizerRepo) Find(ctx context.Context, meetingID, studentID uuid.UUID) (*domain.Organizer, error) {
	args := m.Called(ctx, meetingID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organizer), args.Error(1)
}

func (m *mockOrganizerRepo) Remove(ctx context.Context, meetingID, studentID uuid.UUID) error {
	args := m.Called(ctx, meetingID, studentID)
	return args.Error(0)
}

func (m *mockOrganizerRepo) StudentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*domain.Student, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Student), args.Error(1)
}

// mockReportRepo is a mock implementation of domain.ReportRepository.
type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) AttendanceByDate(ctx context.Context, date string) ([]domain.AttendanceRow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRow), args.Error(1)
}
