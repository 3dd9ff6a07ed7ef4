package store

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
//
// Save hashes the password whenever user.PasswordPending() is true and then
// clears the plaintext field; when no password is pending the stored hash is
// left untouched, even if the user was loaded without it.
// Save returns ErrEmailExists if the email is already taken.
type UserStore interface {
	Repository[domain.User]

	// FindByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The password hash is only loaded when IncludePassword is given.
	FindByEmail(ctx context.Context, email string, opts ...FindOption) (*domain.User, error)
}
