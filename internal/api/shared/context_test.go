package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	require.NotEmpty(t, traceID)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)

	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(context.Background())))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetTraceID(context.WithValue(context.Background(), TraceIDKey, 42)))
}

func TestUserContext(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserFromContext(WithUser(context.Background(), nil))
	assert.False(t, ok)

	user := &domain.User{ID: 9, Email: "host@example.com", Role: domain.RoleHost}
	got, ok := UserFromContext(WithUser(context.Background(), user))
	require.True(t, ok)
	assert.Same(t, user, got)
}
