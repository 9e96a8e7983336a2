package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"osuapi/internal/service"
	"osuapi/pkg/osuapi"
)

// queryInt reads an optional integer query parameter. A missing value is 0.
func queryInt(c *fiber.Ctx, key string) (int, error) {
	s := c.Query(key)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// GetUser returns a user profile. Numeric :user values are ids, anything else is a name.
//
// @Summary     Get a user
// @Tags        users
// @Produce     json
// @Param       user       path  string true  "user id or name"
// @Param       mode       query string false "osu, taiko, ctb or mania"
// @Param       event_days query int    false "max age of events in days (1-31)"
// @Success     200 {object} map[string]any
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Failure     502 {object} errorPayload
// @Router      /users/{user} [get]
func GetUser(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days, err := queryInt(c, "event_days")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_EVENT_DAYS", "invalid event_days")
		}

		u, err := svc.User(c.UserContext(), c.Params("user"), c.Query("mode"), days)
		if err != nil {
			return writeServiceError(c, err, "user not found")
		}
		return c.JSON(osuapi.Fields(u))
	}
}

// GetUserBest returns the user's top scores.
//
// @Summary     Get a user's best scores
// @Tags        users
// @Produce     json
// @Param       user  path  string true  "user id or name"
// @Param       mode  query string false "osu, taiko, ctb or mania"
// @Param       limit query int    false "1-100"
// @Success     200 {object} listResult
// @Failure     400 {object} errorPayload
// @Failure     502 {object} errorPayload
// @Router      /users/{user}/best [get]
func GetUserBest(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		scores, err := svc.UserBest(c.UserContext(), c.Params("user"), c.Query("mode"), limit)
		if err != nil {
			return writeServiceError(c, err, "user not found")
		}
		return c.JSON(newListResult(scores))
	}
}

// GetUserRecent returns the user's plays of the last 24 hours.
//
// @Summary     Get a user's recent plays
// @Tags        users
// @Produce     json
// @Param       user  path  string true  "user id or name"
// @Param       mode  query string false "osu, taiko, ctb or mania"
// @Param       limit query int    false "1-50"
// @Success     200 {object} listResult
// @Failure     400 {object} errorPayload
// @Failure     502 {object} errorPayload
// @Router      /users/{user}/recent [get]
func GetUserRecent(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		scores, err := svc.UserRecent(c.UserContext(), c.Params("user"), c.Query("mode"), limit)
		if err != nil {
			return writeServiceError(c, err, "user not found")
		}
		return c.JSON(newListResult(scores))
	}
}
