// Package commands contains the business operations that modify system
// state. Implements the Command pattern for write operations in the CQRS
// architecture. Every command validates itself at construction; every
// handler runs its ownership/state checks and the mutation inside a single
// unit of work, rolling back on any failure.
package commands

import (
	"context"

	"entregaloya/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// repositories they touch.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// BusinessRepoFactory provides the business repository within a
	// transaction.
	BusinessRepoFactory interface {
		BusinessRepository() ports.BusinessRepository
	}

	// ProductRepoFactory provides the product repository within a
	// transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SessionRepoFactory provides the session repository within a
	// transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// IdentityUoW manages transactions for registration and login, which
	// touch users, businesses and sessions together.
	IdentityUoW interface {
		TxManager
		UserRepoFactory
		BusinessRepoFactory
		SessionRepoFactory
	}

	// IdentityUoWFactory creates identity unit of work instances.
	IdentityUoWFactory interface {
		Create() IdentityUoW
	}

	// CatalogUoW manages transactions for product catalog mutations.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		BusinessRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions for order lifecycle operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		BusinessRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SessionUoW manages transactions for session-only operations.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}
)
