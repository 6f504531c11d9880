// Package middleware provides HTTP middleware for the feed service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ishahbak/feed-service/internal/service"
	"github.com/ishahbak/feed-service/pkg/logger"
)

// userIDKey is the gin context key the gate stores the verified identity
// under.
const userIDKey = "userID"

// authFailedMessage is deliberately the same for a missing header, a bad
// signature and an expired token so clients learn nothing about which it
// was.
const authFailedMessage = "authentication failed"

// RequireAuth verifies the bearer token and attaches the resolved user id
// to the request context. It performs no writes; identity is re-derived
// from the token on every request.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			// The failure kind is logged for diagnostics; the token
			// itself never is.
			logger.Debugf("token rejected: %v", err)
			abortUnauthorized(c)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity attached by RequireAuth.
func UserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}

func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": authFailedMessage})
}
