package commands

import (
	"context"

	"entregaloya/internal/core/domain/model/business"
	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/hash"
)

// RegisterUserCommandHandler creates user accounts. Duplicate phone
// numbers surface as a Conflict both through the pre-check and, in case of
// a concurrent registration, through the unique index on the phone column.
type RegisterUserCommandHandler struct {
	uowFactory IdentityUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
func NewRegisterUserCommandHandler(uowFactory IdentityUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the account and, for business-role users, the owned
// business in the same transaction. Returns the new user id.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	passwordHash, err := hash.Password(cmd.Password())
	if err != nil {
		return 0, err
	}

	newUser, err := user.NewUser(cmd.Name(), cmd.Phone(), cmd.Role(), passwordHash)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	taken, err := userRepo.ExistsByPhone(ctx, cmd.Phone())
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, errs.NewConflictError("telefono", cmd.Phone())
	}

	userID, err := userRepo.Add(ctx, newUser)
	if err != nil {
		return 0, err
	}

	if cmd.Role() == user.Business {
		newBusiness, businessErr := business.NewBusiness(userID, cmd.Name())
		if businessErr != nil {
			return 0, businessErr
		}
		if _, businessErr = uow.BusinessRepository().Add(ctx, newBusiness); businessErr != nil {
			return 0, businessErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return userID, nil
}
