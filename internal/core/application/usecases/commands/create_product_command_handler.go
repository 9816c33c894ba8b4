package commands

import (
	"context"

	"entregaloya/internal/core/domain/model/product"
	"entregaloya/internal/core/domain/services"
	"entregaloya/internal/core/ports"
	"entregaloya/internal/pkg/errs"
)

// CreateProductCommandHandler adds catalog entries for a business. The
// image payload, when attached, is stored through the object-store
// collaborator and only the resulting reference string is persisted.
type CreateProductCommandHandler struct {
	uowFactory  CatalogUoWFactory
	objectStore ports.ObjectStore
	policy      services.AuthorizationPolicy
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(
	uowFactory CatalogUoWFactory,
	objectStore ports.ObjectStore,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory:  uowFactory,
		objectStore: objectStore,
		policy:      services.NewAuthorizationPolicy(),
	}
}

// Handle creates the product. The actor must own the target business;
// anything else is a forbidden outcome before any mutation happens.
// Returns the created product with its assigned id.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newProduct, err := product.NewProduct(cmd.BusinessID(), cmd.Name(), cmd.Description(), cmd.Price(), "")
	if err != nil {
		return nil, err
	}

	if !h.policy.CanManageProduct(cmd.Actor(), newProduct) {
		return nil, errs.NewAccessForbiddenError("manage products of this business")
	}

	var uploadedKey string
	if image := cmd.Image(); image != nil {
		key := image.objectKey(cmd.BusinessID())
		url, putErr := h.objectStore.Put(ctx,
			key, image.Content, image.Size, image.ContentType)
		if putErr != nil {
			return nil, putErr
		}
		newProduct.ChangeImageURL(url)
		uploadedKey = key
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		discardUpload(ctx, h.objectStore, uploadedKey)
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.ProductRepository().Add(ctx, newProduct)
	if err != nil {
		discardUpload(ctx, h.objectStore, uploadedKey)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		discardUpload(ctx, h.objectStore, uploadedKey)
		return nil, err
	}

	created, err := product.RestoreProduct(id, newProduct.BusinessID(), newProduct.Name(),
		newProduct.Description(), newProduct.Price(), newProduct.ImageURL())
	if err != nil {
		return nil, err
	}

	return created, nil
}
