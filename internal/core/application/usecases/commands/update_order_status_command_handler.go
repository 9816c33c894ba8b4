package commands

import (
	"context"
	"log/slog"

	"entregaloya/internal/core/domain/services"
	"entregaloya/internal/core/ports"
	"entregaloya/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler performs business status updates: the
// only operation that moves an order out of pending. Concurrent updates to
// the same order resolve last-committer-wins under the store's transaction
// isolation; no optimistic concurrency token is tracked.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	policy     services.AuthorizationPolicy
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for business status
// updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		policy:     services.NewAuthorizationPolicy(),
		logger:     logger.With("component", "update_order_status_handler"),
	}
}

// Handle loads the order, verifies the actor owns its business, applies
// the transition through the aggregate's state machine and persists the
// result. Illegal transitions (reopening a terminal order) come back as
// validation errors. After a successful commit a pedido_estado_cambiado
// event is published best-effort.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if !h.policy.CanUpdateOrderStatus(cmd.Actor(), target) {
		return errs.NewAccessForbiddenError("update status of this order")
	}

	if err = target.UpdateStatus(cmd.Status(), cmd.Response()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publish(ctx, ports.OrderEvent{
		Type:       ports.OrderEventStatusChanged,
		OrderID:    target.ID(),
		BusinessID: target.BusinessID(),
		Status:     target.Status().String(),
	})

	return nil
}

func (h *UpdateOrderStatusCommandHandler) publish(ctx context.Context, event ports.OrderEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "order event publish failed",
			"order_id", event.OrderID, "error", err)
	}
}
