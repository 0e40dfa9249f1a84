package setup

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestSeedFixtures(t *testing.T) {
	t.Run("seeds sample meetings into an empty store", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		repo.On("FindAll", mock.Anything).Return([]*domain.Meeting{}, nil)

		var seeded []*domain.Meeting
		repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Meeting")).
			Run(func(args mock.Arguments) {
				seeded = append(seeded, args.Get(1).(*domain.Meeting))
			}).
			Return(nil)

		err := SeedFixtures(context.Background(), repo, testLogger())

		require.NoError(t, err)
		require.Len(t, seeded, 2)
		assert.Equal(t, "Project Kickoff", seeded[0].Topic())
		assert.Equal(t, "2024-11-01", seeded[0].DateString())
		assert.Equal(t, 60, seeded[0].Duration())
		assert.Equal(t, 10, seeded[0].InvitedStudents())
		assert.Equal(t, 8, seeded[0].AcceptedInvitations())
		assert.Equal(t, "Weekly Sync", seeded[1].Topic())
		repo.AssertExpectations(t)
	})

	t.Run("does nothing when meetings already exist", func(t *testing.T) {
		repo := new(mockMeetingRepo)

		date, err := time.Parse(domain.DateLayout, "2024-11-01")
		require.NoError(t, err)
		existing, err := domain.NewMeeting("Project Kickoff", date, 60, 10, 8, "Kickoff")
		require.NoError(t, err)

		repo.On("FindAll", mock.Anything).Return([]*domain.Meeting{existing}, nil)

		err = SeedFixtures(context.Background(), repo, testLogger())

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates a lookup failure", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		repo.On("FindAll", mock.Anything).Return(nil, errors.New("db down"))

		err := SeedFixtures(context.Background(), repo, testLogger())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db down")
	})

	t.Run("propagates a save failure", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		repo.On("FindAll", mock.Anything).Return([]*domain.Meeting{}, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Meeting")).Return(errors.New("disk full"))

		err := SeedFixtures(context.Background(), repo, testLogger())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
