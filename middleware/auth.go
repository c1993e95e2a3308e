package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware.
const (
	ContextUID   = "uid"
	ContextEmail = "email"
	ContextName  = "name"
)

// FirebaseAuthMiddleware verifies the Firebase ID token from the
// Authorization header and stores the caller's identity on the request
// context. Sessions and credentials live entirely with the provider.
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		token, err := utils.AuthClient.VerifyIDToken(ctx, idToken)
		if err != nil {
			utils.GetLogger().Warn("ID token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextUID, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(ContextEmail, email)
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set(ContextName, name)
		}

		c.Next()
	}
}

// CurrentUID returns the authenticated caller's UID, or "" when the
// request passed through no auth middleware.
func CurrentUID(c *gin.Context) string {
	uid, _ := c.Get(ContextUID)
	s, _ := uid.(string)
	return s
}
