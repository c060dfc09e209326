package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
	"github.com/dbuhub/blog-admin-api/internal/core/ports"
)

// loginTokenTTL is fixed: tokens are stateless and unrevocable, so the
// window is kept short.
const loginTokenTTL = 20 * time.Minute

// TokenService issues and validates HMAC-signed JWTs.
type TokenService struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	ttl    time.Duration
}

// NewTokenService builds a TokenService for the given symmetric secret and
// algorithm name (HS256, HS384 or HS512). An unknown algorithm is a
// configuration error and fails construction.
func NewTokenService(secret, algorithm string) (*TokenService, error) {
	method, err := signingMethod(algorithm)
	if err != nil {
		return nil, err
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    loginTokenTTL,
	}, nil
}

func signingMethod(name string) (*jwt.SigningMethodHMAC, error) {
	switch name {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", name)
	}
}

// Issue signs a token carrying the username as subject, the user id, and an
// expiry of now + TTL.
func (s *TokenService) Issue(claims ports.TokenClaims) (string, error) {
	t := jwt.NewWithClaims(s.method, jwt.MapClaims{
		"sub": claims.Username,
		"id":  claims.UserID,
		"exp": time.Now().Add(s.ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

// Validate verifies the signature and expiry and returns the embedded
// claims. Every failure collapses to domain.ErrInvalidCredentials so the
// caller cannot distinguish a forged token from an expired one.
func (s *TokenService) Validate(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// JSON numbers decode as float64; the id is informational, so a missing
	// or oddly typed value does not invalidate the token.
	id, _ := claims["id"].(float64)

	return &ports.TokenClaims{Username: sub, UserID: int64(id)}, nil
}
