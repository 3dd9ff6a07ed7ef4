package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/phrazzld/podcast-api/internal/service/auth"
)

// AuthMiddleware resolves bearer tokens to users.
type AuthMiddleware struct {
	tokens auth.TokenService
	users  service.UserService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService, users service.UserService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		users:  users,
	}
}

// Authenticate verifies the bearer token, loads its subject and stores the
// user in the request context. Requests without a valid token get 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.tokens.Verify(r.Context(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"Authentication error", err)
			}
			return
		}

		res := m.users.FindByID(r.Context(), claims.SubjectID)
		if !res.OK {
			if res.Error.IsBusiness() {
				// Token for a deleted account.
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid token",
					res.Err(), shared.WithElevatedLogLevel())
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Authentication error", res.Err())
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), res.Value)))
	})
}

// RequireRole rejects authenticated users whose role is not among roles with 403.
// It must run after Authenticate.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := shared.UserFromContext(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			shared.RespondWithError(w, r, http.StatusForbidden, "Insufficient role")
		})
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}
