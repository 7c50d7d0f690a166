package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/espacionido/nido-backend/internal/platform/identity"
	"github.com/espacionido/nido-backend/pkg/response"
	"github.com/espacionido/nido-backend/pkg/types"
)

const claimsKey = "token_claims"

// Auth extracts and verifies the bearer token, storing the claims in the
// gin context. When role is non-empty, the role claim must match.
func Auth(verifier identity.Verifier, role types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortFail(c, response.APIResponseCodeUnauthorized, "authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.AbortFail(c, response.APIResponseCodeUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			response.AbortFail(c, response.APIResponseCodeUnauthorized, "invalid or expired token")
			return
		}

		if role != "" && claims.Role != role {
			response.AbortFail(c, response.APIResponseCodeForbidden, "insufficient role")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified token claims stored by Auth.
func ClaimsFrom(c *gin.Context) *types.TokenClaims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*types.TokenClaims); ok {
			return claims
		}
	}
	return nil
}
