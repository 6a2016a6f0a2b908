package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/loginhub/auth-service/internal/domain/auth/token"
)

const claimsKey = "auth.claims"

// RequireAuth gates protected routes behind a bearer token. A missing or
// empty Authorization header is 401; a header that is present but fails
// verification is 403. Verified claims are stored on the gin context.
func RequireAuth(tokens token.TokenUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims RequireAuth attached to the context. The
// second result is false on routes that did not pass through the gate.
func ClaimsFrom(c *gin.Context) (token.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return token.Claims{}, false
	}
	claims, ok := v.(token.Claims)
	return claims, ok
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
