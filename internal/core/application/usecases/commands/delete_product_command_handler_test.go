package commands_test

import (
	"testing"

	"entregaloya/internal/core/application/usecases/commands"
	"entregaloya/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := businessActor(9, 3)
	cmd, err := commands.NewDeleteProductCommand(actor, 5)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, int64(5)).Return(restoredProduct(t, 5, 3), nil).Once(),
		productRepo.On("Delete", ctx, int64(5)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_ForbiddenForOtherBusiness(t *testing.T) {
	ctx := t.Context()
	actor := businessActor(20, 8)
	cmd, err := commands.NewDeleteProductCommand(actor, 5)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCatalogUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, int64(5)).Return(restoredProduct(t, 5, 3), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNewDeleteProductCommand_RejectsBadID(t *testing.T) {
	actor := businessActor(9, 3)

	_, err := commands.NewDeleteProductCommand(actor, 0)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
