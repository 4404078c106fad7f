package middleware

import (
	"net/http"
	"strings"

	"contesthub/models"
	"contesthub/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token from the Authorization header
// and attaches the authenticated identity to the request context as
// "user_id" and "role". Requests without a verifiable token never reach
// the handler.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"data":    nil,
				"error":   "UNAUTHORIZED",
			})
			return
		}

		claims, err := services.ParseToken(jwtSecret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"data":    nil,
				"error":   "UNAUTHORIZED",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles rejects authenticated identities whose role is not in the
// allow-list. It runs after AuthMiddleware and before any resource or
// ownership check.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("role")
		role, ok := value.(models.Role)
		if !exists || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"data":    nil,
				"error":   "UNAUTHORIZED",
			})
			return
		}

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"data":    nil,
			"error":   "FORBIDDEN",
		})
	}
}
