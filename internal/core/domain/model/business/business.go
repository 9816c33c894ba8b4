// Package business provides the seller aggregate. A business is created
// 1:1 with a business-role user at registration time and the owner
// relationship is permanent.
package business

import (
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

// ErrBusinessIsNotConstructed is returned when a Business instance was not
// created through NewBusiness or RestoreBusiness.
var ErrBusinessIsNotConstructed = errs.NewValueIsRequiredError(
	"Business must be created via NewBusiness or RestoreBusiness",
)

// Business is the seller entity owned by exactly one user. The category is
// optional and only used for listing/filtering.
type Business struct {
	id          int64
	ownerUserID int64
	name        string
	categoryID  *int64

	guard guard.ConstructorGuard
}

// NewBusiness creates an unsaved business for the given owner.
func NewBusiness(ownerUserID int64, name string) (*Business, error) {
	if ownerUserID <= 0 {
		return nil, errs.NewValueIsInvalidError("owner user id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}

	return &Business{
		ownerUserID: ownerUserID,
		name:        name,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreBusiness rebuilds a business from persistence.
func RestoreBusiness(id, ownerUserID int64, name string, categoryID *int64) (*Business, error) {
	b, err := NewBusiness(ownerUserID, name)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("business id")
	}
	b.id = id
	b.categoryID = categoryID
	return b, nil
}

// Validate ensures the business was created through a constructor.
func (b *Business) Validate() error {
	if b == nil {
		return ErrBusinessIsNotConstructed
	}
	return b.guard.Validate(ErrBusinessIsNotConstructed)
}

// ID returns the persistence-assigned identifier, 0 for unsaved businesses.
func (b *Business) ID() int64 { return b.id }

// OwnerUserID returns the id of the owning user account.
func (b *Business) OwnerUserID() int64 { return b.ownerUserID }

// Name returns the business display name.
func (b *Business) Name() string { return b.name }

// CategoryID returns the optional category reference, nil when unset.
func (b *Business) CategoryID() *int64 { return b.categoryID }
