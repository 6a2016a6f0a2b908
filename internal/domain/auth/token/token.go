package token

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/loginhub/auth-service/internal/domain/auth/model"
)

// Claims is the token payload: the user's identity plus the registered
// issued-at/expiry fields. The signature covers all of it.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// TokenUtil issues and verifies bearer tokens. Verify collapses every
// failure mode (malformed, tampered, expired) into errors.ErrInvalidToken.
type TokenUtil interface {
	Issue(user model.User) (string, error)
	Verify(raw string) (Claims, error)
}
