package services_test

import (
	"testing"
	"time"

	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/core/domain/model/product"
	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt64(v int64) *int64 { return &v }

func customerActor(userID int64) session.Actor {
	return session.Actor{UserID: userID, Role: user.Customer}
}

func businessActor(userID, businessID int64) session.Actor {
	return session.Actor{UserID: userID, Role: user.Business, BusinessID: &businessID}
}

func restoredProduct(t *testing.T, businessID int64) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(9, businessID, "Empanada", "", nil, "")
	require.NoError(t, err)
	return p
}

func restoredOrder(t *testing.T, customerID *int64, businessID int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(11, customerID, businessID, nil, "dos empanadas", 2,
		status, "", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestCanManageProduct(t *testing.T) {
	policy := services.NewAuthorizationPolicy()

	t.Run("owning business may manage", func(t *testing.T) {
		assert.True(t, policy.CanManageProduct(businessActor(8, 3), restoredProduct(t, 3)))
	})

	t.Run("another business may not", func(t *testing.T) {
		assert.False(t, policy.CanManageProduct(businessActor(8, 4), restoredProduct(t, 3)))
	})

	t.Run("customers may not", func(t *testing.T) {
		assert.False(t, policy.CanManageProduct(customerActor(7), restoredProduct(t, 3)))
	})

	t.Run("nil product is denied", func(t *testing.T) {
		assert.False(t, policy.CanManageProduct(businessActor(8, 3), nil))
	})
}

func TestCanEditOrder(t *testing.T) {
	policy := services.NewAuthorizationPolicy()

	t.Run("creating customer may edit while pending", func(t *testing.T) {
		assert.True(t, policy.CanEditOrder(customerActor(7), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})

	t.Run("other customers may not", func(t *testing.T) {
		assert.False(t, policy.CanEditOrder(customerActor(99), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})

	t.Run("anonymous orders cannot be edited", func(t *testing.T) {
		assert.False(t, policy.CanEditOrder(customerActor(7), restoredOrder(t, nil, 3, order.Pending)))
	})

	t.Run("terminal orders cannot be edited", func(t *testing.T) {
		assert.False(t, policy.CanEditOrder(customerActor(7), restoredOrder(t, ptrInt64(7), 3, order.Confirmed)))
		assert.False(t, policy.CanEditOrder(customerActor(7), restoredOrder(t, ptrInt64(7), 3, order.Cancelled)))
	})

	t.Run("businesses may not edit", func(t *testing.T) {
		assert.False(t, policy.CanEditOrder(businessActor(8, 3), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})
}

func TestCanDeleteOrder(t *testing.T) {
	policy := services.NewAuthorizationPolicy()

	t.Run("creating customer may delete while pending", func(t *testing.T) {
		assert.True(t, policy.CanDeleteOrder(customerActor(7), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})

	t.Run("customer may not delete after confirmation", func(t *testing.T) {
		assert.False(t, policy.CanDeleteOrder(customerActor(7), restoredOrder(t, ptrInt64(7), 3, order.Confirmed)))
	})

	t.Run("owning business may delete in any state", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Cancelled} {
			assert.True(t, policy.CanDeleteOrder(businessActor(8, 3), restoredOrder(t, ptrInt64(7), 3, status)))
		}
	})

	t.Run("another business may not delete", func(t *testing.T) {
		assert.False(t, policy.CanDeleteOrder(businessActor(8, 4), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})

	t.Run("nil order is denied", func(t *testing.T) {
		assert.False(t, policy.CanDeleteOrder(businessActor(8, 3), nil))
	})
}

func TestCanUpdateOrderStatus(t *testing.T) {
	policy := services.NewAuthorizationPolicy()

	t.Run("owning business may update", func(t *testing.T) {
		assert.True(t, policy.CanUpdateOrderStatus(businessActor(8, 3), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})

	t.Run("another business may not", func(t *testing.T) {
		assert.False(t, policy.CanUpdateOrderStatus(businessActor(8, 4), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})

	t.Run("customers may not", func(t *testing.T) {
		assert.False(t, policy.CanUpdateOrderStatus(customerActor(7), restoredOrder(t, ptrInt64(7), 3, order.Pending)))
	})
}
