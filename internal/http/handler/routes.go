package handler

import (
	"github.com/gofiber/fiber/v2"

	"osuapi/internal/service"
)

// RegisterRoutes attaches the gateway routes to the provided Fiber app.
// Handlers only parse the request; lookups live in the service.
func RegisterRoutes(app *fiber.App, svc service.LookupService) {
	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())

	users := app.Group("/users")
	users.Get("/:user", GetUser(svc))
	users.Get("/:user/best", GetUserBest(svc))
	users.Get("/:user/recent", GetUserRecent(svc))

	beatmaps := app.Group("/beatmaps")
	beatmaps.Get("/", ListBeatmaps(svc))
	beatmaps.Get("/:id", GetBeatmap(svc))
	beatmaps.Get("/:id/scores", GetBeatmapScores(svc))

	app.Get("/matches/:id", GetMatch(svc))
}
