// Package hash wraps bcrypt for password storage. Verification is a
// constant-time comparison; there is deliberately no fallback path for
// legacy plaintext passwords.
package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes a plaintext password with the default bcrypt cost.
func Password(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether password matches the stored bcrypt hash.
func Check(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
