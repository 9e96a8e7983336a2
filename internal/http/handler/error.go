package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"osuapi/internal/http/middleware"
	"osuapi/internal/service"
	"osuapi/pkg/osuapi"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_USER", "NOT_FOUND", "UPSTREAM_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates errors returned by the lookup service.
func writeServiceError(c *fiber.Ctx, err error, notFound string) error {
	var (
		statusErr *osuapi.StatusError
		apiErr    *osuapi.APIError
		decodeErr *osuapi.DecodeError
	)

	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", notFound)
	case errors.Is(err, service.ErrInvalidUser):
		return writeError(c, fiber.StatusBadRequest, "INVALID_USER", "invalid user")
	case errors.Is(err, service.ErrInvalidMode):
		return writeError(c, fiber.StatusBadRequest, "INVALID_MODE", "invalid mode")
	case errors.Is(err, service.ErrInvalidMods):
		return writeError(c, fiber.StatusBadRequest, "INVALID_MODS", "invalid mods")
	case errors.Is(err, service.ErrInvalidLimit):
		return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	case errors.Is(err, context.DeadlineExceeded):
		return writeError(c, fiber.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "osu! API did not answer in time")
	case errors.As(err, &statusErr), errors.As(err, &apiErr), errors.As(err, &decodeErr):
		return writeError(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "osu! API request failed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
