package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"entregaloya/internal/core/application/usecases/commands"
	"entregaloya/internal/core/domain/model/business"
	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/core/ports"
	"entregaloya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoredBusiness(t *testing.T, id, ownerUserID int64) *business.Business {
	t.Helper()
	b, err := business.RestoreBusiness(id, ownerUserID, "Panaderia Sol", nil)
	require.NoError(t, err)
	return b
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(ptrInt64(7), 3, nil, "dos empanadas", 2)
	require.NoError(t, err)

	targetBusiness := restoredBusiness(t, 3, 9)

	orderRepo := new(MockOrderRepository)
	businessRepo := new(MockBusinessRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BusinessRepository").Return(businessRepo).Once(),
		businessRepo.On("Get", ctx, int64(3)).Return(targetBusiness, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(int64(11), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, ports.OrderEvent{
			Type:       ports.OrderEventCreated,
			OrderID:    11,
			BusinessID: 3,
			Status:     order.Pending.String(),
		}).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(11), orderID)

	added := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, added.Status())
	assert.Equal(t, 2, added.Quantity())
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BusinessNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(nil, 99, nil, "hola", 1)
	require.NoError(t, err)

	businessRepo := new(MockBusinessRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BusinessRepository").Return(businessRepo).Once(),
		businessRepo.On("Get", ctx, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("negocio_id", int64(99))).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(nil, 3, nil, "hola", 1)
	require.NoError(t, err)

	targetBusiness := restoredBusiness(t, 3, 9)

	orderRepo := new(MockOrderRepository)
	businessRepo := new(MockBusinessRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BusinessRepository").Return(businessRepo).Once(),
		businessRepo.On("Get", ctx, int64(3)).Return(targetBusiness, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(int64(12), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.AnythingOfType("ports.OrderEvent")).
			Return(errors.New("broker unavailable")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12), orderID)
}

func TestCreateOrderCommandHandler_Handle_NilPublisher(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(nil, 3, nil, "hola", 1)
	require.NoError(t, err)

	targetBusiness := restoredBusiness(t, 3, 9)

	orderRepo := new(MockOrderRepository)
	businessRepo := new(MockBusinessRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BusinessRepository").Return(businessRepo).Once(),
		businessRepo.On("Get", ctx, int64(3)).Return(targetBusiness, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(int64(13), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger())
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(13), orderID)
}
