package mocks

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserService is a mock of service.UserService for use with testify/mock.
// Expectations return the full service.Result value.
type TestifyMockUserService struct {
	mock.Mock
}

var _ service.UserService = (*TestifyMockUserService)(nil)

// CreateAccount is a mock implementation of service.UserService.CreateAccount
func (m *TestifyMockUserService) CreateAccount(
	ctx context.Context,
	input service.CreateAccountInput,
) service.Result[struct{}] {
	return m.Called(ctx, input).Get(0).(service.Result[struct{}])
}

// Login is a mock implementation of service.UserService.Login
func (m *TestifyMockUserService) Login(ctx context.Context, input service.LoginInput) service.Result[string] {
	return m.Called(ctx, input).Get(0).(service.Result[string])
}

// FindByID is a mock implementation of service.UserService.FindByID
func (m *TestifyMockUserService) FindByID(ctx context.Context, id int64) service.Result[*domain.User] {
	return m.Called(ctx, id).Get(0).(service.Result[*domain.User])
}

// EditProfile is a mock implementation of service.UserService.EditProfile
func (m *TestifyMockUserService) EditProfile(
	ctx context.Context,
	userID int64,
	input service.EditProfileInput,
) service.Result[struct{}] {
	return m.Called(ctx, userID, input).Get(0).(service.Result[struct{}])
}
