package middleware

import (
	"net/http"
	"strings"

	"dentax/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the authenticated email claim lands in the gin context.
const ContextEmailKey = "email"

// JWTAuthMiddleware is the first guard stage: it requires a valid bearer token
// and attaches the decoded email claim to the context. A failed verification
// aborts the chain.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}
