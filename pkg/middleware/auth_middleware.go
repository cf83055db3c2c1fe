package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripwise/pkg/utils"
)

// OwnerIDKey holds the authenticated owner id in the gin context.
const OwnerIDKey = "owner_id"

// TokenVerifier resolves a bearer token to the owner id it was issued for.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware requires a valid bearer token. With a nil verifier
// authentication is disabled and every request passes through.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		ownerID, err := verifier.VerifyToken(c.Request.Context(), token)
		if err != nil || ownerID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(OwnerIDKey, ownerID)
		c.Next()
	}
}

// AuthenticatedOwner returns the owner set by AuthMiddleware, or "" when
// authentication is disabled.
func AuthenticatedOwner(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}
