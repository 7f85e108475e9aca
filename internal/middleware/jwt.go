package middleware

import (
	"net/http"
	"strings"

	"olyncha_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired rejette la requête sans token valide.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token manquant"})
			c.Abort()
			return
		}

		userID := utils.ParseJWT(token)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token invalide"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuth pose user_id dans le contexte si un token valide est
// présent, et laisse passer sinon (paniers invités).
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID := utils.ParseJWT(token); userID != "" {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}
