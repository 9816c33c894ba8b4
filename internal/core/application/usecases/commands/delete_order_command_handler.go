package commands

import (
	"context"

	"entregaloya/internal/core/domain/services"
	"entregaloya/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders under the delete policy:
// creating customer while pending, or owning business in any state.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AuthorizationPolicy
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle loads the order, verifies the delete policy and removes the row,
// all in one transaction.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !h.policy.CanDeleteOrder(cmd.Actor(), target) {
		return errs.NewAccessForbiddenError("delete this order")
	}

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
