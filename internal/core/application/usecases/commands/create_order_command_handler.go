package commands

import (
	"context"
	"log/slog"

	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/core/ports"
)

// CreateOrderCommandHandler creates orders in pending status. The target
// business must exist; the referencing invariant is checked inside the
// same transaction that inserts the order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle creates the order and returns its assigned id. After a successful
// commit a pedido_creado event is published best-effort.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.BusinessRepository().Get(ctx, cmd.BusinessID()); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.BusinessID(), cmd.ProductID(), cmd.Message(), cmd.Quantity())
	if err != nil {
		return 0, err
	}

	id, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.publish(ctx, ports.OrderEvent{
		Type:       ports.OrderEventCreated,
		OrderID:    id,
		BusinessID: cmd.BusinessID(),
		Status:     order.Pending.String(),
	})

	return id, nil
}

func (h *CreateOrderCommandHandler) publish(ctx context.Context, event ports.OrderEvent) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "order event publish failed",
			"order_id", event.OrderID, "error", err)
	}
}
