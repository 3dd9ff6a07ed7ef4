package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Common validation errors
var (
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// MaxPasswordLength is bcrypt's input limit; longer inputs are silently truncated by it.
const MaxPasswordLength = 72

// Role is what a user is allowed to do on the platform.
type Role string

// Known roles.
const (
	RoleListener Role = "Listener"
	RoleHost     Role = "Host"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleListener || r == RoleHost
}

// ParseRole converts a role name into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

var emailValidator = validator.New()

// User represents a registered account on the podcast platform.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, set only when it must be (re)hashed on the next write
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new, not yet persisted User.
// The ID is assigned by the store on first save.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The store hashes the password when the user is written.
func NewUser(email, password string, role Role) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if err := emailValidator.Var(u.Email, "email"); err != nil {
		return ErrInvalidEmail
	}

	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	// A pending plaintext password must fit bcrypt; otherwise a stored hash is required,
	// unless the user was loaded without its password column.
	if u.Password != "" {
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.ID == 0 && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// SetPassword stages a new plaintext password to be hashed on the next write.
func (u *User) SetPassword(password string) {
	u.Password = password
}

// PasswordPending reports whether the next write must hash a new password.
func (u *User) PasswordPending() bool {
	return u.Password != ""
}
