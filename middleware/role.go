package middleware

import (
	"net/http"

	userService "courtside/services/user"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates a route group on the caller's stored role.
// Runs after FirebaseAuthMiddleware: the caller must be authenticated
// and their profile must carry admin or superuser.
func AdminOnlyMiddleware(users userService.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := CurrentUID(c)
		if uid == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		profile, err := users.GetProfile(uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if !profile.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
