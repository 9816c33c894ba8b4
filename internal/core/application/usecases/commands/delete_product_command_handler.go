package commands

import (
	"context"

	"entregaloya/internal/core/domain/services"
	"entregaloya/internal/pkg/errs"
)

// DeleteProductCommandHandler removes catalog entries. The stored image
// object, if any, is left behind; references from old orders keep
// resolving until a cleanup reclaims it.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.AuthorizationPolicy
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

// Handle loads the product, checks ownership and deletes the row, all in
// one transaction.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	target, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !h.policy.CanManageProduct(cmd.Actor(), target) {
		return errs.NewAccessForbiddenError("manage this product")
	}

	if err = productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
