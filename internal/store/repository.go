package store

import "context"

// Repository is the persistence contract shared by every entity store.
// Implementations report a missing entity with ErrNotFound (or an
// entity-specific error wrapping it).
type Repository[T any] interface {
	// FindByID retrieves an entity by its identifier.
	FindByID(ctx context.Context, id int64, opts ...FindOption) (*T, error)

	// Save inserts the entity when its ID is zero, assigning the new ID,
	// and updates it otherwise. Stores may transform fields on write.
	Save(ctx context.Context, entity *T) error

	// Delete removes the entity with the given identifier.
	Delete(ctx context.Context, id int64) error
}

// FindOptions controls the projection of a lookup.
type FindOptions struct {
	// IncludePassword loads the stored password hash, which is excluded by default.
	IncludePassword bool

	// WithEpisodes loads a podcast's episodes.
	WithEpisodes bool
}

// FindOption configures a lookup.
type FindOption func(*FindOptions)

// IncludePassword requests the password hash column for user lookups.
func IncludePassword() FindOption {
	return func(o *FindOptions) {
		o.IncludePassword = true
	}
}

// WithEpisodes requests that podcast lookups load the episode relation.
func WithEpisodes() FindOption {
	return func(o *FindOptions) {
		o.WithEpisodes = true
	}
}

// ApplyFindOptions folds opts into a FindOptions value.
func ApplyFindOptions(opts ...FindOption) FindOptions {
	var o FindOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// PasswordHasher produces the stored form of a plaintext password.
// UserStore implementations use it to hash on write.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Repositories bundles the stores one process runs against, so the server
// can switch between persistence backends in a single place.
type Repositories interface {
	Users() UserStore
	Podcasts() PodcastStore
	Episodes() EpisodeStore
	Close() error
}
