package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by Compare when the candidate does not match the hash.
var ErrPasswordMismatch = bcrypt.ErrMismatchedHashAndPassword

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext equivalent.
	// Returns nil on success, ErrPasswordMismatch on mismatch, or another error
	// when the hash itself is unusable.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt. Its Hash method
// satisfies store.PasswordHasher, so stores and login share one cost setting.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates a BcryptVerifier hashing at the given cost.
// Out-of-range costs fall back to bcrypt.DefaultCost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Hash returns the bcrypt hash of password at the configured cost.
func (v *BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), v.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// IsMismatch reports whether err means the password did not match.
func IsMismatch(err error) bool {
	return errors.Is(err, ErrPasswordMismatch)
}
