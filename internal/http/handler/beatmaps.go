package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"osuapi/internal/service"
	"osuapi/pkg/osuapi"
)

// pathID reads a positive numeric path parameter.
func pathID(c *fiber.Ctx, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListBeatmaps searches beatmaps. Every filter is optional.
//
// @Summary     Search beatmaps
// @Tags        beatmaps
// @Produce     json
// @Param       since     query string false "ranked or loved after this date (YYYY-MM-DD or RFC3339)"
// @Param       set       query int    false "beatmap set id"
// @Param       user      query string false "mapper id or name"
// @Param       mode      query string false "osu, taiko, ctb or mania"
// @Param       converted query bool   false "include converted beatmaps"
// @Param       hash      query string false "beatmap file md5"
// @Param       limit     query int    false "1-500"
// @Success     200 {object} listResult
// @Failure     400 {object} errorPayload
// @Failure     502 {object} errorPayload
// @Router      /beatmaps [get]
func ListBeatmaps(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f service.BeatmapFilter

		if s := c.Query("since"); s != "" {
			since, err := parseSince(s)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_SINCE", "invalid since")
			}
			f.Since = since
		}
		if s := c.Query("set"); s != "" {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil || id <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid set id")
			}
			f.SetID = id
		}
		limit, err := queryInt(c, "limit")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		f.User = c.Query("user")
		f.Mode = c.Query("mode")
		f.Converted = c.QueryBool("converted", false)
		f.Hash = c.Query("hash")
		f.Limit = limit

		maps, err := svc.Beatmaps(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err, "beatmap not found")
		}
		return c.JSON(newListResult(maps))
	}
}

func parseSince(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

// GetBeatmap returns a single beatmap difficulty.
//
// @Summary     Get a beatmap
// @Tags        beatmaps
// @Produce     json
// @Param       id   path  int    true  "beatmap id"
// @Param       mode query string false "convert to this mode"
// @Success     200 {object} map[string]any
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Failure     502 {object} errorPayload
// @Router      /beatmaps/{id} [get]
func GetBeatmap(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		b, err := svc.Beatmap(c.UserContext(), id, c.Query("mode"))
		if err != nil {
			return writeServiceError(c, err, "beatmap not found")
		}

		res := osuapi.Fields(b)
		res["url"] = b.URL()
		return c.JSON(res)
	}
}

// GetBeatmapScores returns the leaderboard of a beatmap.
//
// @Summary     Get a beatmap's scores
// @Tags        beatmaps
// @Produce     json
// @Param       id    path  int    true  "beatmap id"
// @Param       user  query string false "only this user's score"
// @Param       mode  query string false "osu, taiko, ctb or mania"
// @Param       mods  query string false "mod filter, e.g. HDDT or 72"
// @Param       limit query int    false "1-100"
// @Success     200 {object} listResult
// @Failure     400 {object} errorPayload
// @Failure     502 {object} errorPayload
// @Router      /beatmaps/{id}/scores [get]
func GetBeatmapScores(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		limit, err := queryInt(c, "limit")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		scores, err := svc.BeatmapScores(c.UserContext(), id, service.ScoreFilter{
			User:  c.Query("user"),
			Mode:  c.Query("mode"),
			Mods:  c.Query("mods"),
			Limit: limit,
		})
		if err != nil {
			return writeServiceError(c, err, "beatmap not found")
		}
		return c.JSON(newListResult(scores))
	}
}
