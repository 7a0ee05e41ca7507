package middleware

import (
	"log"
	"net/http"
	"strings"

	"graph_service/internal/auth"
	"graph_service/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves the caller
// through the identity service. When identityService is nil (no identity
// service configured) the token claims alone are trusted.
func AuthMiddleware(identityService *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if identityService != nil {
			userResponse, err := identityService.GetUserByID(claims.UserID.String())
			if err != nil {
				log.Printf("Failed to fetch user data: %v", err)
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to fetch user data"})
				c.Abort()
				return
			}
			c.Set("role", userResponse.User.Role)
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
