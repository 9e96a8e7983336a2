package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks every response as not cacheable. Gateway responses are live
// osu! API data and are never stored by the gateway itself either.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
