package auth

import "context"

// RefreshTokenRepository persists issued refresh tokens. Only a fingerprint
// of the token is stored; the raw value never reaches the database.
type RefreshTokenRepository interface {
	// Create records a token for a user together with the session it was
	// issued to.
	Create(ctx context.Context, userID string, token string, expiresAt int64, session SessionTrackingRequest) error

	// IsRevoked reports whether the token was revoked or has expired. An
	// unknown token surfaces the store's no-rows error.
	IsRevoked(ctx context.Context, token string) (bool, error)

	// Revoke marks the token revoked. Revoking twice is a no-op.
	Revoke(ctx context.Context, token string) error
}
