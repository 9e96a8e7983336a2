package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"osuapi/internal/service"
)

// HealthCheck reports whether the osu! API answers with the configured key.
//
// @Summary     Readiness probe
// @Tags        health
// @Produce     json
// @Success     200 {object} map[string]string
// @Failure     503 {object} errorPayload
// @Router      /health [get]
func HealthCheck(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()
		if err := svc.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
