package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"police-records-backend/internal/shared/response"
	"police-records-backend/pkg/jwt"
)

// ContextUsername is the gin context key holding the authenticated operator.
const ContextUsername = "username"

// AuthMiddleware validates a bearer token and stores the operator username
// on the context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
