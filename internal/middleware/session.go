package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/fashionstore/internal/session"
)

const sessionContextKey = "sessionToken"

// SessionTokenHeader carries the opaque cart session token.
const SessionTokenHeader = "X-Session-Token"

// SessionMiddleware resolves the session token for the request, minting a new
// one when the client has none yet. The token is echoed back on every
// response so the client can persist it.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(SessionTokenHeader)
		if token == "" {
			token = session.NewToken()
		}

		c.Locals(sessionContextKey, token)
		c.Set(SessionTokenHeader, token)
		return c.Next()
	}
}

// GetSessionToken extracts the session token from context.
func GetSessionToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(sessionContextKey).(string); ok {
		return token
	}
	return ""
}
