package middleware

import (
	"net/http"
	"strings"

	"meetbot/config"
	"meetbot/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware verifies the bearer token on protected routes. When
// AUTH_REQUIRED is false the middleware is a pass-through, which keeps local
// development and tests tokenless.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !config.AppConfig.AuthRequired {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		clientID, err := utils.VerifyToken(tokenString)
		if err != nil || clientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set("clientID", clientID)
		c.Next()
	}
}
