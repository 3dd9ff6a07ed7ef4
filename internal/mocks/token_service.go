package mocks

import (
	"context"

	"github.com/phrazzld/podcast-api/internal/service/auth"
	"github.com/stretchr/testify/mock"
)

// TestifyMockTokenService is a mock of auth.TokenService for use with testify/mock
type TestifyMockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*TestifyMockTokenService)(nil)

// Sign is a mock implementation of auth.TokenService.Sign
func (m *TestifyMockTokenService) Sign(ctx context.Context, subjectID int64) (string, error) {
	args := m.Called(ctx, subjectID)
	return args.String(0), args.Error(1)
}

// Verify is a mock implementation of auth.TokenService.Verify
func (m *TestifyMockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if claims, ok := args.Get(0).(*auth.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}
