package handler

import (
	"github.com/gofiber/fiber/v2"

	"osuapi/internal/service"
	"osuapi/pkg/osuapi"
)

// GetMatch returns a multiplayer match with its games.
//
// @Summary     Get a multiplayer match
// @Tags        matches
// @Produce     json
// @Param       id path int true "match id"
// @Success     200 {object} map[string]any
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Failure     502 {object} errorPayload
// @Router      /matches/{id} [get]
func GetMatch(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		m, err := svc.Match(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "match not found")
		}
		return c.JSON(osuapi.Fields(m))
	}
}
