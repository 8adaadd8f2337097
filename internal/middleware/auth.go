package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fintrack-be/internal/jwt"
)

// ContextUserID is the gin context key the auth middleware stores the
// authenticated user's id under.
const ContextUserID = "userID"

// AuthMiddleware verifies the Bearer token on every request and stores the
// caller's user id in the context. Requests without a valid token get a 401
// with the shared error envelope.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}

		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := jwtService.ParseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
