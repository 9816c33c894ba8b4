package commands_test

import (
	"testing"

	"entregaloya/internal/core/application/usecases/commands"
	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_CustomerDeletesPending(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(7)
	cmd, err := commands.NewDeleteOrderCommand(actor, 11)
	require.NoError(t, err)

	target := restoredOrder(t, 11, ptrInt64(7), 3, order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(11)).Return(target, nil).Once(),
		orderRepo.On("Delete", ctx, int64(11)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CustomerCannotDeleteConfirmed(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(7)
	cmd, err := commands.NewDeleteOrderCommand(actor, 11)
	require.NoError(t, err)

	target := restoredOrder(t, 11, ptrInt64(7), 3, order.Confirmed)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(11)).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_BusinessDeletesAnyState(t *testing.T) {
	ctx := t.Context()
	actor := businessActor(9, 3)
	cmd, err := commands.NewDeleteOrderCommand(actor, 11)
	require.NoError(t, err)

	target := restoredOrder(t, 11, ptrInt64(7), 3, order.Cancelled)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(11)).Return(target, nil).Once(),
		orderRepo.On("Delete", ctx, int64(11)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_AnonymousOrderOnlyBusiness(t *testing.T) {
	ctx := t.Context()
	actor := customerActor(7)
	cmd, err := commands.NewDeleteOrderCommand(actor, 11)
	require.NoError(t, err)

	// Anonymous order: no customer may claim it.
	target := restoredOrder(t, 11, nil, 3, order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(11)).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
}
