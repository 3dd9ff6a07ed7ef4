package mocks

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// FindByID is a mock implementation of store.UserStore.FindByID
func (m *TestifyMockUserStore) FindByID(
	ctx context.Context,
	id int64,
	opts ...store.FindOption,
) (*domain.User, error) {
	args := m.Called(ctx, id, store.ApplyFindOptions(opts...))
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByEmail is a mock implementation of store.UserStore.FindByEmail
func (m *TestifyMockUserStore) FindByEmail(
	ctx context.Context,
	email string,
	opts ...store.FindOption,
) (*domain.User, error) {
	args := m.Called(ctx, email, store.ApplyFindOptions(opts...))
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Save is a mock implementation of store.UserStore.Save
func (m *TestifyMockUserStore) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Delete is a mock implementation of store.UserStore.Delete
func (m *TestifyMockUserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
