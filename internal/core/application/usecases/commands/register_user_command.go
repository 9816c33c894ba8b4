package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create an account. For
// business-role users a Business entity is created in the same transaction
// with the same display name; the owner relationship is permanent.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	role     user.Role
	name     string
	phone    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates that the role is one of cliente/negocio
// and that name, phone and password are present.
func NewRegisterUserCommand(role user.Role, name, phone, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role { return c.role }

// Name returns the display name.
func (c RegisterUserCommand) Name() string { return c.name }

// Phone returns the unique phone number.
func (c RegisterUserCommand) Phone() string { return c.phone }

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterUserCommand) Password() string { return c.password }

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("nombre")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("telefono")
	}
	c.phone = phone
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
