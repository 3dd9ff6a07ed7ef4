package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by every Repositories backend. Entity errors wrap
// the generic kind so callers can match either.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrDuplicate     = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrPodcastNotFound = fmt.Errorf("%w: podcast", ErrNotFound)
	ErrEpisodeNotFound = fmt.Errorf("%w: episode", ErrNotFound)

	// ErrEmailExists is the only uniqueness constraint in the catalog schema.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err is, or wraps, any not-found sentinel.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is, or wraps, a uniqueness violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
