package ports

import (
	"context"
	"time"

	"entregaloya/internal/core/domain/model/business"
	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/core/domain/model/product"
	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user and returns its assigned id.
	// A duplicate phone surfaces as a Conflict error.
	Add(ctx context.Context, aggregate *user.User) (int64, error)

	// Get retrieves a user by id.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByPhoneAndRole retrieves the account registered under the phone
	// number for the given role. Returns ObjectNotFound when absent.
	GetByPhoneAndRole(ctx context.Context, phone string, role user.Role) (*user.User, error)

	// ExistsByPhone reports whether any account uses the phone number.
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// BusinessRepository defines the persistence contract for businesses.
type BusinessRepository interface {
	// Add persists a new business and returns its assigned id.
	Add(ctx context.Context, aggregate *business.Business) (int64, error)

	// Get retrieves a business by id. Returns ObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*business.Business, error)

	// GetByOwner retrieves the business owned by the given user.
	// Returns ObjectNotFound when the user owns none.
	GetByOwner(ctx context.Context, ownerUserID int64) (*business.Business, error)
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and returns its assigned id.
	Add(ctx context.Context, aggregate *product.Product) (int64, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by id. Returns ObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// Delete removes the product permanently.
	Delete(ctx context.Context, id int64) error
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and returns its assigned id.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns ObjectNotFound when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes the order permanently. There is no soft delete.
	Delete(ctx context.Context, id int64) error
}

// SessionRepository defines the persistence contract for server-side
// sessions.
type SessionRepository interface {
	// Add persists a freshly created session.
	Add(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by token. Returns ObjectNotFound when the
	// token is unknown; expiry is the caller's concern.
	Get(ctx context.Context, token session.Token) (*session.Session, error)

	// Delete removes a session, revoking it immediately. Deleting an
	// unknown token is not an error.
	Delete(ctx context.Context, token session.Token) error

	// DeleteExpired removes all sessions expired at the given instant and
	// returns how many rows went away.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
