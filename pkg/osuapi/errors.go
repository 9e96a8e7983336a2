package osuapi

import (
	"errors"
	"fmt"
)

var (
	ErrMissingKey   = errors.New("osuapi: api key is required")
	ErrNilConnector = errors.New("osuapi: connector is nil")
	ErrClosed       = errors.New("osuapi: connector is closed")
	ErrNoMatch      = errors.New("osuapi: match not found")
	ErrInvalidQuery = errors.New("osuapi: invalid query")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	// Message is the "error" field of the response body, if any.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("osuapi: %s: %s", e.Status, e.Message)
	}
	return "osuapi: " + e.Status
}

// APIError is returned when a 2xx response carries {"error": "..."}.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "osuapi: " + e.Message
}

// DecodeError is returned when a response body is not the expected JSON.
// It is never returned for transport failures.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("osuapi: decode %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
