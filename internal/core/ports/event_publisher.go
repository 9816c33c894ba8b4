package ports

import (
	"context"
)

// Order event types emitted after successful commits.
const (
	OrderEventCreated       = "pedido_creado"
	OrderEventStatusChanged = "pedido_estado_cambiado"
)

// OrderEvent is the message published to the order-changes topic.
type OrderEvent struct {
	Type       string `json:"type"`
	OrderID    int64  `json:"pedido_id"`
	BusinessID int64  `json:"negocio_id"`
	Status     string `json:"estado"`
}

// OrderEventPublisher pushes order lifecycle events to interested
// consumers. Publishing is best-effort: a failure is logged by the caller
// and never rolls back the already-committed transaction.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
