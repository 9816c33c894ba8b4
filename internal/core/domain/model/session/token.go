package session

import (
	"entregaloya/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTokenIsNotConstructed indicates a Token that was not created through
// NewToken or TokenFromString. The zero value is invalid.
var ErrTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"Token must be created via NewToken or TokenFromString",
)

// Token is the opaque session identifier handed to clients in an HttpOnly
// cookie. It wraps a v4 UUID to guarantee unguessability and immutability.
type Token struct {
	id uuid.UUID
}

// NewToken generates a fresh random session token.
func NewToken() Token {
	return Token{id: uuid.New()}
}

// TokenFromString parses the cookie representation of a token.
func TokenFromString(raw string) (Token, error) {
	if raw == "" {
		return Token{}, errs.NewValueIsRequiredError("session token")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return Token{}, errs.NewValueIsInvalidErrorWithCause("session token", err)
	}
	return Token{id: parsed}, nil
}

// Validate returns an error for the zero-value token.
func (t Token) Validate() error {
	if t.id == uuid.Nil {
		return ErrTokenIsNotConstructed
	}
	return nil
}

// String returns the canonical UUID representation stored in the cookie.
func (t Token) String() string {
	return t.id.String()
}

// Bytes returns the raw uuid.UUID for persistence mapping.
func (t Token) Bytes() uuid.UUID {
	return t.id
}

// IsEqual compares two tokens by value.
func (t Token) IsEqual(other Token) bool {
	return t.id == other.id
}
