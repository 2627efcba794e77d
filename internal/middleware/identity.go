package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const UserIDHeader = "X-User-ID"

const UserIDKey = "user_id"

// UserIdentity reads the user id the auth gateway verified upstream.
// Requests that reach this service without one are rejected, not guessed.
func UserIdentity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing user identity"},
			)
			return
		}

		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid user identity"},
			)
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}
