package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMeetingHandler_Handle(t *testing.T) {
	t.Run("deletes an existing meeting", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewDeleteMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		meeting := storedMeeting(t)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Commit", txCtx).Return(nil)
		repo.On("FindByID", txCtx, meeting.ID()).Return(meeting, nil)
		repo.On("Delete", txCtx, meeting.ID()).Return(nil)

		err := handler.Handle(ctx, DeleteMeetingCommand{MeetingID: meeting.ID()})

		require.NoError(t, err)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("returns not found for a missing meeting", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewDeleteMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		id := uuid.New()

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		repo.On("FindByID", txCtx, id).Return(nil, nil)

		err := handler.Handle(ctx, DeleteMeetingCommand{MeetingID: id})

		assert.ErrorIs(t, err, ErrMeetingNotFound)
		repo.AssertNotCalled(t, "Delete", txCtx, id)

		uow.AssertExpectations(t)
	})

	t.Run("rolls back when delete fails", func(t *testing.T) {
		repo := new(mockMeetingRepo)
		uow := new(mockUnitOfWork)
		handler := NewDeleteMeetingHandler(repo, uow)

		ctx := context.Background()
		txCtx := context.WithValue(ctx, "tx", "transaction")

		meeting := storedMeeting(t)

		uow.On("Begin", ctx).Return(txCtx, nil)
		uow.On("Rollback", txCtx).Return(nil)
		repo.On("FindByID", txCtx, meeting.ID()).Return(meeting, nil)
		repo.On("Delete", txCtx, meeting.ID()).Return(errors.New("database error"))

		err := handler.Handle(ctx, DeleteMeetingCommand{MeetingID: meeting.ID()})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database error")

		uow.AssertExpectations(t)
	})
}
