package commands_test

import (
	"testing"
	"time"

	"entregaloya/internal/core/application/usecases/commands"
	"entregaloya/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	token := session.NewToken()
	cmd, err := commands.NewLogoutCommand(token)
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockSessionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Delete", ctx, token).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLogoutCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	sessionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLogoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.LogoutCommand{} // not constructed properly

	factory := new(MockSessionUoWFactory)
	handler := commands.NewLogoutCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrLogoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPurgeSessionsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	cmd := commands.NewPurgeSessionsCommand(now)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockSessionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("DeleteExpired", ctx, now).Return(int64(4), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPurgeSessionsCommandHandler(factory)
	removed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
	sessionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPurgeSessionsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PurgeSessionsCommand{} // not constructed properly

	factory := new(MockSessionUoWFactory)
	handler := commands.NewPurgeSessionsCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPurgeSessionsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
