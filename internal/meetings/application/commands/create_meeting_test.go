package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/avancini-tools/studyhall/internal/meetings/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMeetingHandler_Handle(t *testing.T) {
	t.Run("successfully creates a meeting", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("Save", txCtx, mock.AnythingOfType("*domain.Meeting")).Return(nil)

		duration := 45
		invited := 15
		accepted := 12
		cmd := CreateMeetingCommand{
			Topic:               "Weekly Sync",
			Date:                "2024-11-02",
			MeetingType:         "Sync",
			Duration:            &duration,
			InvitedStudents:     &invited,
			AcceptedInvitations: &accepted,
		}

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.MeetingID)

		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("applies defaults when optional fields are omitted", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		var saved *domain.Meeting
		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("Save", txCtx, mock.AnythingOfType("*domain.Meeting")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.Meeting)
			}).
			Return(nil)

		cmd := CreateMeetingCommand{
			Topic:       "Project Kickoff",
			Date:        "2024-11-01",
			MeetingType: "Kickoff",
		}

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, saved)
		assert.Equal(t, domain.DefaultDuration, saved.Duration())
		assert.Equal(t, domain.DefaultInvitedStudents, saved.InvitedStudents())
		assert.Equal(t, domain.DefaultAcceptedInvitations, saved.AcceptedInvitations())

		repo.AssertExpectations(t)
	})

	t.Run("fails with malformed date", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)

		cmd := CreateMeetingCommand{
			Topic:       "Kickoff",
			Date:        "01-11-2024",
			MeetingType: "Kickoff",
		}

		result, err := handler.Handle(ctx, cmd)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "invalid date")

		uow.AssertExpectations(t)
	})

	t.Run("fails with empty topic", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)

		cmd := CreateMeetingCommand{
			Topic:       "",
			Date:        "2024-11-01",
			MeetingType: "Kickoff",
		}

		result, err := handler.Handle(ctx, cmd)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrMeetingEmptyTopic)

		uow.AssertExpectations(t)
	})

	t.Run("fails when repository save fails", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		repo.On("Save", txCtx, mock.AnythingOfType("*domain.Meeting")).Return(errors.New("database error"))

		cmd := CreateMeetingCommand{
			Topic:       "Kickoff",
			Date:        "2024-11-01",
			MeetingType: "Kickoff",
		}

		result, err := handler.Handle(ctx, cmd)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "database error")

		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("fails when begin transaction fails", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewCreateMeetingHandler(repo, uow)

		ctx := context.Background()

		uow.On("Begin", ctx).Return(ctx, errors.New("transaction error"))

		cmd := CreateMeetingCommand{
			Topic:       "Kickoff",
			Date:        "2024-11-01",
			MeetingType: "Kickoff",
		}

		result, err := handler.Handle(ctx, cmd)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "transaction error")

		uow.AssertExpectations(t)
	})
}
