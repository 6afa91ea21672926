package middleware

import (
	"net/http"
	"strings"

	"course-marketplace/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const UserKey = "userID"

// AuthMiddleware validates the Bearer token and stores the user id in the
// request context.
func AuthMiddleware(jwt *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": gin.H{"code": http.StatusUnauthorized, "message": "missing bearer token"}})
			return
		}

		userID, err := jwt.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "error": gin.H{"code": http.StatusUnauthorized, "message": "invalid or expired token"}})
			return
		}

		c.Set(UserKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) uuid.UUID {
	if val, exists := c.Get(UserKey); exists {
		if id, ok := val.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
