package commands

import (
	"errors"

	"entregaloya/internal/core/domain/model/user"
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a credential check for the account registered
// under a phone number and role.
type LoginCommand struct { //nolint:recvcheck //using for validation
	role     user.Role
	phone    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand validates that role, phone and password are present.
func NewLoginCommand(role user.Role, phone, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setPhone(phone),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Role returns the account role to authenticate as.
func (c LoginCommand) Role() user.Role { return c.role }

// Phone returns the phone number identifying the account.
func (c LoginCommand) Phone() string { return c.phone }

// Password returns the presented plaintext password.
func (c LoginCommand) Password() string { return c.password }

func (c *LoginCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *LoginCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("telefono")
	}
	c.phone = phone
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
