package session

import (
	"entregaloya/internal/core/domain/model/user"
)

// Actor is the resolved identity performing a request: user id plus role,
// and for business-role users the id of the business they own. It is
// produced by the session middleware and passed explicitly to every core
// operation; there is no implicit global session lookup.
type Actor struct {
	UserID     int64
	Role       user.Role
	BusinessID *int64
}

// IsCustomer reports whether the actor holds a customer account.
func (a Actor) IsCustomer() bool {
	return a.Role == user.Customer
}

// IsBusiness reports whether the actor holds a business account.
func (a Actor) IsBusiness() bool {
	return a.Role == user.Business
}

// OwnsBusiness reports whether the actor is the owner of the given
// business. Always false for customers and for business accounts whose
// business could not be resolved.
func (a Actor) OwnsBusiness(businessID int64) bool {
	return a.IsBusiness() && a.BusinessID != nil && *a.BusinessID == businessID
}
