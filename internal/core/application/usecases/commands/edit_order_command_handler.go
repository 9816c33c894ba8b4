package commands

import (
	"context"

	"entregaloya/internal/core/domain/services"
	"entregaloya/internal/pkg/errs"
)

// EditOrderCommandHandler applies customer edits to pending orders. The
// authorization check and the write share one transaction so a concurrent
// status update cannot slip between them.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AuthorizationPolicy
}

// NewEditOrderCommandHandler creates a handler for customer order edits.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle loads the order, verifies the actor may edit it (its creating
// customer, order still pending), applies the supplied fields and persists
// the result. Any other actor, and any non-pending order, is a forbidden
// outcome.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	if !h.policy.CanEditOrder(cmd.Actor(), target) {
		return errs.NewAccessForbiddenError("edit this order")
	}

	if message := cmd.Message(); message != nil {
		if err = target.ChangeMessage(*message); err != nil {
			return err
		}
	}
	if quantity := cmd.Quantity(); quantity != nil {
		target.ChangeQuantity(*quantity)
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
