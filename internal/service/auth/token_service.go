package auth

import (
	"context"
	"time"
)

// MinSecretLength is the minimum accepted length of the signing key.
const MinSecretLength = 32

// TokenService signs and verifies session tokens.
//
// A session token is a JWT whose payload carries the subject's numeric id under
// the "id" claim. Tokens are stateless: they are never persisted or revoked.
type TokenService interface {
	// Sign encodes subjectID into a signed token. Without a configured lifetime
	// the token is a pure function of the subject id and the signing key.
	Sign(ctx context.Context, subjectID int64) (string, error)

	// Verify checks algorithm, signature and expiry and returns the claims.
	// Failures are ErrInvalidToken or ErrExpiredToken.
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Claims is the decoded payload of a verified token.
type Claims struct {
	SubjectID int64
	// ExpiresAt is zero when the token carries no exp claim.
	ExpiresAt time.Time
}
