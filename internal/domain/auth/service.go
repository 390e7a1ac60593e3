package auth

import "context"

// AuthService defines authentication business logic
type AuthService interface {
	// Login verifies email+password credentials and issues a token pair
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// LoginWithGoogle issues a token pair for a verified Google identity.
	// The account must already exist; the roster is seeded by admins.
	LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// RefreshToken rotates a refresh token into a new token pair
	RefreshToken(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error
}
