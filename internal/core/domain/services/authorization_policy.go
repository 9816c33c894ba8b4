package services

import (
	"entregaloya/internal/core/domain/model/order"
	"entregaloya/internal/core/domain/model/product"
	"entregaloya/internal/core/domain/model/session"
)

// AuthorizationPolicy is a pure domain service deciding which operations a
// resolved actor may perform on already-loaded entities. It has no side
// effects and never touches storage; a false result is a forbidden
// outcome, not an error.
//
// The rules:
//   - products are managed only by the business that owns them
//   - orders are edited only by their creating customer while pending
//   - orders are deleted by their creating customer while pending, or by
//     the owning business in any state
//   - order status is updated only by the owning business
type AuthorizationPolicy struct{}

// NewAuthorizationPolicy creates the policy service.
func NewAuthorizationPolicy() AuthorizationPolicy {
	return AuthorizationPolicy{}
}

// CanManageProduct reports whether the actor may create, update or delete
// the given product. True iff the actor is a business and owns the
// business that owns the product.
func (AuthorizationPolicy) CanManageProduct(actor session.Actor, p *product.Product) bool {
	if p == nil {
		return false
	}
	return actor.OwnsBusiness(p.BusinessID())
}

// CanEditOrder reports whether the actor may change the order's message or
// quantity. True iff the actor is the creating customer and the order is
// still pending.
func (AuthorizationPolicy) CanEditOrder(actor session.Actor, o *order.Order) bool {
	if o == nil || !actor.IsCustomer() {
		return false
	}
	if o.CustomerID() == nil || *o.CustomerID() != actor.UserID {
		return false
	}
	return o.Status() == order.Pending
}

// CanDeleteOrder reports whether the actor may remove the order. Customers
// may delete their own pending orders; the owning business may delete any
// of its orders for record keeping.
func (p AuthorizationPolicy) CanDeleteOrder(actor session.Actor, o *order.Order) bool {
	if o == nil {
		return false
	}
	if actor.IsCustomer() {
		return p.CanEditOrder(actor, o)
	}
	return actor.OwnsBusiness(o.BusinessID())
}

// CanUpdateOrderStatus reports whether the actor may move the order through
// its lifecycle. True iff the actor is the owning business; transition
// validity itself is the order aggregate's concern.
func (AuthorizationPolicy) CanUpdateOrderStatus(actor session.Actor, o *order.Order) bool {
	if o == nil {
		return false
	}
	return actor.OwnsBusiness(o.BusinessID())
}
