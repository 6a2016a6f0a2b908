package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	customErrors "github.com/loginhub/auth-service/internal/domain/auth/errors"
	"github.com/loginhub/auth-service/internal/domain/auth/model"
	domainToken "github.com/loginhub/auth-service/internal/domain/auth/token"
	"github.com/loginhub/auth-service/internal/infra/config"
)

// TokenUtilImpl signs and verifies HS256 bearer tokens under a single
// process-wide secret. The clock is a field so expiry is testable.
type TokenUtilImpl struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenUtil(cfg *config.Config) *TokenUtilImpl {
	return &TokenUtilImpl{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

func (t *TokenUtilImpl) Issue(user model.User) (string, error) {
	now := t.now()

	claims := domainToken.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign token")
	}
	return signed, nil
}

// Verify parses and checks the token. Expired, tampered and malformed
// tokens are indistinguishable to the caller.
func (t *TokenUtilImpl) Verify(raw string) (domainToken.Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &domainToken.Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return t.secret, nil
	}, jwt.WithIssuedAt(), jwt.WithTimeFunc(t.now))

	if err != nil || !parsed.Valid {
		return domainToken.Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*domainToken.Claims)
	if !ok {
		return domainToken.Claims{}, customErrors.ErrInvalidToken
	}

	return *claims, nil
}
