package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
)

// UserStore is an in-memory store.UserStore.
type UserStore struct {
	data   *dataset
	hasher store.PasswordHasher
}

var _ store.UserStore = (*UserStore)(nil)

func projectUser(u domain.User, opts store.FindOptions) *domain.User {
	u.Password = ""
	if !opts.IncludePassword {
		u.HashedPassword = ""
	}
	return &u
}

// FindByID implements store.UserStore.
func (s *UserStore) FindByID(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	u, ok := s.data.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return projectUser(u, store.ApplyFindOptions(opts...)), nil
}

// FindByEmail implements store.UserStore. Emails compare case-insensitively.
func (s *UserStore) FindByEmail(
	ctx context.Context,
	email string,
	opts ...store.FindOption,
) (*domain.User, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	s.data.mu.RLock()
	defer s.data.mu.RUnlock()

	for _, u := range s.data.users {
		if strings.EqualFold(u.Email, email) {
			return projectUser(u, store.ApplyFindOptions(opts...)), nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Save implements store.UserStore.
func (s *UserStore) Save(ctx context.Context, user *domain.User) error {
	if err := checkContext(ctx); err != nil {
		return err
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	// Hash before taking the lock; bcrypt is slow.
	var hashed string
	if user.PasswordPending() {
		var err error
		hashed, err = s.hasher.Hash(user.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for id, other := range s.data.users {
		if id != user.ID && strings.EqualFold(other.Email, user.Email) {
			return store.ErrEmailExists
		}
	}

	record := *user
	record.Password = ""
	if user.ID == 0 {
		if hashed == "" {
			return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyPassword)
		}
		s.data.lastUserID++
		record.ID = s.data.lastUserID
	} else {
		existing, ok := s.data.users[user.ID]
		if !ok {
			return store.ErrUserNotFound
		}
		record.CreatedAt = existing.CreatedAt
		if hashed == "" {
			hashed = existing.HashedPassword
		}
	}
	record.HashedPassword = hashed
	s.data.users[record.ID] = record

	user.ID = record.ID
	user.Password = ""
	user.HashedPassword = hashed
	return nil
}

// Delete implements store.UserStore.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, ok := s.data.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.data.users, id)
	return nil
}
