package middleware

import (
	"net/http"

	userRepo "dentax/database/repository/user"
	"dentax/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminOnlyMiddleware is the second guard stage, composed after
// JWTAuthMiddleware on admin routes: it looks up the authenticated user and
// rejects unless the record carries the admin role.
func AdminOnlyMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		u, err := repo.GetByEmail(email)
		if err != nil {
			utils.GetLogger().Error("admin role lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		if !u.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}
