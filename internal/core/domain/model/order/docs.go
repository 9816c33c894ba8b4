// Package order provides the order ("pedido") aggregate and its lifecycle
// state machine, the core of the marketplace backend.
//
// The package includes:
//   - Order: the aggregate root holding the customer request, quantity,
//     status and the business's free-text response
//   - Status: a state machine enforcing pendiente -> {confirmado, cancelado}
//     with terminal states immutable
//
// Key business rules:
//   - Orders start Pending and stay Pending until the owning business's
//     first status update
//   - Customer-initiated mutations are only legal while Pending; the
//     authorization policy in the services package enforces who may call
//     which mutation
//   - Quantity is clamped to a minimum of 1 rather than rejected
//   - Reopening a terminal order back to Pending is rejected; re-submitting
//     the same terminal status merely refreshes the response text
package order
