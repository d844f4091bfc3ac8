package ports

import (
	"context"
	"time"
)

// UserProfile is the projection returned to the client: never the hash, never
// the board collections.
type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AuthService defines account and credential use cases.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*UserProfile, error)
	// Login returns a signed bearer token and the authenticated user. A wrong
	// email and a wrong password produce the same error.
	Login(ctx context.Context, email, password string) (string, *UserProfile, error)
	// Logout revokes the token's jti until its natural expiry.
	Logout(ctx context.Context, rawToken string) error
	CurrentUser(ctx context.Context, userID string) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*UserProfile, error)
}

// TokenDenylist records revoked token IDs. Backed by Redis in production.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
