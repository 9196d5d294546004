package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roni/pkg/config"
)

// Auth checks the static bearer credential. There are no per-user
// identities; every caller presents the same token. An empty configured
// token disables the check.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.APIAccessToken == "" {
			c.Next()
			return
		}
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.Fields(auth)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(config.APIAccessToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}
