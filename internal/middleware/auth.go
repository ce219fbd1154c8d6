package middleware

import (
	"context"
	"course_admin_backend/internal/config"
	"course_admin_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenRevoker answers whether a token's jti has been logged out.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, jti string) bool
}

// AuthMiddleware validates the bearer token and rejects revoked sessions.
// The token may also arrive as a query parameter for download links.
func AuthMiddleware(cfg *config.Config, revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if revoker != nil && revoker.IsRevoked(c.Request.Context(), claims.ID) {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("admin", claims)
		c.Next()
	}
}
