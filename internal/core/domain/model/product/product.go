// Package product provides the catalog aggregate. Products are owned
// exclusively by one business and are only mutated through that business's
// authenticated session. Image payload handling lives at the edges; the
// domain records the resulting reference string and owns the extension
// allow-list.
package product

import (
	"fmt"
	"path/filepath"
	"strings"

	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError(
	"Product must be created via NewProduct or RestoreProduct",
)

// allowedImageExtensions is the upload allow-list. Validation happens here
// in the core, not in the storage collaborator.
var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// ValidateImageFilename checks that the uploaded filename carries one of
// the allowed image extensions (png, jpg, jpeg, gif).
func ValidateImageFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("imagen",
			fmt.Errorf("extension %q is not allowed", ext))
	}
	return nil
}

// Product is a catalog entry. Price is optional; a nil price means the
// business has not published one.
type Product struct {
	id          int64
	businessID  int64
	name        string
	description string
	price       *decimal.Decimal
	imageURL    string

	guard guard.ConstructorGuard
}

// NewProduct creates an unsaved product for a business. Name is mandatory,
// price (when given) must not be negative.
func NewProduct(businessID int64, name, description string, price *decimal.Decimal, imageURL string) (*Product, error) {
	if businessID <= 0 {
		return nil, errs.NewValueIsInvalidError("negocio_id")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}
	if price != nil && price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("precio")
	}

	return &Product{
		businessID:  businessID,
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct rebuilds a product from persistence.
func RestoreProduct(id, businessID int64, name, description string, price *decimal.Decimal, imageURL string) (*Product, error) {
	p, err := NewProduct(businessID, name, description, price, imageURL)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("product id")
	}
	p.id = id
	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Rename changes the display name. Empty names are rejected so partial
// updates cannot blank out a product.
func (p *Product) Rename(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	p.name = name
	return nil
}

// ChangeDescription replaces the description. Empty is allowed.
func (p *Product) ChangeDescription(description string) {
	p.description = description
}

// ChangePrice replaces the published price. Negative prices are rejected.
func (p *Product) ChangePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("precio")
	}
	p.price = &price
	return nil
}

// ChangeImageURL records a new image reference produced by the storage
// collaborator.
func (p *Product) ChangeImageURL(url string) {
	p.imageURL = url
}

// ID returns the persistence-assigned identifier, 0 for unsaved products.
func (p *Product) ID() int64 { return p.id }

// BusinessID returns the owning business.
func (p *Product) BusinessID() int64 { return p.businessID }

// Name returns the display name.
func (p *Product) Name() string { return p.name }

// Description returns the free-text description.
func (p *Product) Description() string { return p.description }

// Price returns the published price, nil when none is set.
func (p *Product) Price() *decimal.Decimal { return p.price }

// ImageURL returns the public image reference, empty when no image was
// uploaded.
func (p *Product) ImageURL() string { return p.imageURL }
