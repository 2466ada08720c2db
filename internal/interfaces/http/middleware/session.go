// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session resolves the browser session ID from the cookie, issuing a new
// one on first contact (24 hour cookie).
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie("session_id", sessionID, 86400, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session ID resolved by the Session middleware
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
