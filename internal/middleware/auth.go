package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/matjipduo/backend/internal/types"
)

// SessionValidator checks that a bearer token belongs to a live session.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*types.SessionClaims, error)
}

// SessionAuth rejects requests without a valid session token and puts
// the session id and raw token on the context for handlers.
func SessionAuth(validator SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := validator.ValidateSession(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Set("session_token", token)
		c.Next()
	}
}
