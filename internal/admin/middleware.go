package admin

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func RequireAdminKey(key string) fiber.Handler {
	key = strings.TrimSpace(key)
	// If it is not configured, we hard-fail (safer than accidentally open).
	if key == "" {
		return func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusInternalServerError, "ADMIN_KEY not set")
		}
	}

	return func(c *fiber.Ctx) error {
		got := strings.TrimSpace(c.Get("X-Admin-Key"))
		if got == "" || got != key {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid admin key")
		}
		return c.Next()
	}
}
