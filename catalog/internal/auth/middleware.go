package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxAdminIDKey = "adminID"

// AdminMiddleware validates bearer access tokens and injects the admin id for protected endpoints.
func AdminMiddleware(m *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid header format"})
			return
		}

		claims, err := m.ValidateToken(parts[1])
		if err != nil {
			log.Printf("[catalog-auth] WARN rejected token err=%v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if claims.TokenType != TokenAccess || claims.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access token required"})
			return
		}

		c.Set(CtxAdminIDKey, claims.AdminID)
		c.Next()
	}
}
