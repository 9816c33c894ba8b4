package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Ownership and
// state checks and the mutation itself run read-then-write against the
// same connection and commit together; on any failure the transaction is
// rolled back and no partial state is visible. Client code must explicitly
// manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository

	// BusinessRepository returns a BusinessRepository bound to the current
	// transaction.
	BusinessRepository() BusinessRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// SessionRepository returns a SessionRepository bound to the current
	// transaction.
	SessionRepository() SessionRepository
}
