package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/podcast-api/internal/config"
	"github.com/phrazzld/podcast-api/internal/platform/logger"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA256 signing.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration    // zero disables the exp claim
	timeFunc      func() time.Time // Injectable for testing
}

// sessionClaims is the wire form of the token payload.
type sessionClaims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService signing with cfg.JWTSecret.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	return newHMACTokenService(cfg, time.Now)
}

func newHMACTokenService(cfg config.AuthConfig, now func() time.Time) (*hmacTokenService, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, ErrWeakSecret
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      now,
	}, nil
}

// Sign creates a signed token for subjectID.
func (s *hmacTokenService) Sign(ctx context.Context, subjectID int64) (string, error) {
	log := logger.FromContext(ctx)

	claims := sessionClaims{ID: subjectID}
	if s.tokenLifetime > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(s.timeFunc().Add(s.tokenLifetime))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign session token",
			"error", err,
			"subject_id", subjectID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Verify parses token and returns its claims if the signature and expiry check out.
func (s *hmacTokenService) Verify(ctx context.Context, token string) (*Claims, error) {
	log := logger.FromContext(ctx)

	parsed, err := jwt.ParseWithClaims(
		token,
		&sessionClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token verification failed: expired", "error", err)
			return nil, ErrExpiredToken
		}
		log.Debug("token verification failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err))
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.ID <= 0 {
		log.Debug("token verification failed: invalid claims")
		return nil, ErrInvalidToken
	}

	out := &Claims{SubjectID: claims.ID}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
