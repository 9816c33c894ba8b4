package commands

import (
	"context"

	"entregaloya/internal/core/domain/model/product"
	"entregaloya/internal/core/domain/services"
	"entregaloya/internal/core/ports"
	"entregaloya/internal/pkg/errs"
)

// UpdateProductCommandHandler applies partial updates to a catalog entry.
type UpdateProductCommandHandler struct {
	uowFactory  CatalogUoWFactory
	objectStore ports.ObjectStore
	policy      services.AuthorizationPolicy
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(
	uowFactory CatalogUoWFactory,
	objectStore ports.ObjectStore,
) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory:  uowFactory,
		objectStore: objectStore,
		policy:      services.NewAuthorizationPolicy(),
	}
}

// Handle loads the product, checks ownership, applies the supplied fields
// and persists the result in one transaction. A new image is uploaded to
// the object store before the row is written; if the transaction then
// fails the fresh object is deleted again so no orphan is left behind.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	target, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if !h.policy.CanManageProduct(cmd.Actor(), target) {
		return nil, errs.NewAccessForbiddenError("manage this product")
	}

	if name := cmd.Name(); name != nil {
		if err = target.Rename(*name); err != nil {
			return nil, err
		}
	}
	if description := cmd.Description(); description != nil {
		target.ChangeDescription(*description)
	}
	if price := cmd.Price(); price != nil {
		if err = target.ChangePrice(*price); err != nil {
			return nil, err
		}
	}
	var uploadedKey string
	if image := cmd.Image(); image != nil {
		key := image.objectKey(target.BusinessID())
		url, putErr := h.objectStore.Put(ctx,
			key, image.Content, image.Size, image.ContentType)
		if putErr != nil {
			return nil, putErr
		}
		target.ChangeImageURL(url)
		uploadedKey = key
	}

	if err = productRepo.Update(ctx, target); err != nil {
		discardUpload(ctx, h.objectStore, uploadedKey)
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		discardUpload(ctx, h.objectStore, uploadedKey)
		return nil, err
	}

	return target, nil
}
