package user

import "context"

type UserRepository interface {
	// GetByID retrieves a user by primary key
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (User, error)

	// Create inserts a new user account
	Create(ctx context.Context, u User) (User, error)

	// LinkGoogleAccount attaches an OAuth identity to an existing user
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
