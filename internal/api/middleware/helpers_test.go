package middleware

import (
	"context"
	"net/http"

	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
)

func ptrResult(r service.Result[*domain.User]) *service.Result[*domain.User] {
	return &r
}

func withUser(r *http.Request, user *domain.User) context.Context {
	return shared.WithUser(r.Context(), user)
}
