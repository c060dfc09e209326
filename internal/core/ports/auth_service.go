package ports

import (
	"context"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
)

// AuthService implements registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenClaims is the data embedded in a signed token.
type TokenClaims struct {
	Username string
	UserID   int64
}

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	// Validate returns domain.ErrInvalidCredentials for every failure mode:
	// bad signature, malformed token, or expiry.
	Validate(token string) (*TokenClaims, error)
}
