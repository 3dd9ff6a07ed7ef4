package auth

import (
	"errors"
	"fmt"
)

// Token verification errors
var (
	// ErrInvalidToken indicates the token is malformed, was signed with another
	// key or algorithm, or carries no usable subject.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired. It wraps ErrInvalidToken
	// so callers that only care about validity can check a single error.
	ErrExpiredToken = fmt.Errorf("%w: expired", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWeakSecret is returned at construction when the signing key is too short.
	ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
)
