// Package user provides the account aggregate shared by both marketplace
// roles. A user is immutable after registration except for its password
// hash, which only ever changes through a full re-registration; there is
// no in-place rehash path.
package user

import (
	"entregaloya/internal/pkg/errs"
	"entregaloya/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errs.NewValueIsRequiredError(
	"User must be created via NewUser or RestoreUser",
)

// User is the account aggregate. The id is assigned by the persistence
// layer on first insert; a freshly constructed user carries id 0.
//
// Invariants:
//   - name and phone are non-empty
//   - phone is unique across all users (enforced by storage)
//   - role is either Customer or Business and never changes
//   - passwordHash is a bcrypt hash, never plaintext
type User struct {
	id           int64
	name         string
	phone        string
	role         Role
	passwordHash string

	guard guard.ConstructorGuard
}

// NewUser creates an unsaved user. The password must already be hashed;
// the domain never sees plaintext credentials.
func NewUser(name, phone string, role Role, passwordHash string) (*User, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("nombre")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("telefono")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}

	return &User{
		name:         name,
		phone:        phone,
		role:         role,
		passwordHash: passwordHash,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser rebuilds a user from persistence with its assigned id.
func RestoreUser(id int64, name, phone string, role Role, passwordHash string) (*User, error) {
	u, err := NewUser(name, phone, role, passwordHash)
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("user id")
	}
	u.id = id
	return u, nil
}

// Validate ensures the user was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the persistence-assigned identifier, 0 for unsaved users.
func (u *User) ID() int64 { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Phone returns the unique phone number used for login.
func (u *User) Phone() string { return u.phone }

// Role returns the account role.
func (u *User) Role() Role { return u.role }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }
