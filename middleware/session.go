package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// SessionMiddleware tags every request with a session id, issuing a cookie
// on first contact. The id keys the in-memory cart; nothing is persisted.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
		}

		c.Set("session_id", sid)
		c.Next()
	}
}
