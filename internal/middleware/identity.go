package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/zekeriya15/BookShelf-API/internal/httpx"
)

// Identity is taken verbatim from the Authorization header. There is no
// cryptographic verification: the service trusts an upstream auth layer to
// have populated the header. The value "__admin__" bypasses ownership checks.

// IdentityOptional stores the caller identity in locals when the header is
// present. Handlers that tolerate anonymous callers (listing) use this.
func IdentityOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identity := strings.TrimSpace(c.Get("Authorization")); identity != "" {
			c.Locals("identity", identity)
		}
		return c.Next()
	}
}

// IdentityRequired rejects requests without an identity header.
func IdentityRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := strings.TrimSpace(c.Get("Authorization"))
		if identity == "" {
			return httpx.Unauthorized(c, "You need to login first")
		}
		c.Locals("identity", identity)
		return c.Next()
	}
}
