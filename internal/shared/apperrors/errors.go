// Package apperrors defines the error kinds shared across features.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrUpstreamUnavailable is returned when every upstream endpoint failed
	// or none is configured.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamBlocked marks an endpoint that answered with a legal or
	// regional block (HTTP 451). It is not terminal: the next endpoint is tried.
	ErrUpstreamBlocked = errors.New("upstream blocked")

	// ErrMalformedResponse is returned when an upstream payload does not have
	// the expected shape.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrPersistence wraps a failed database write.
	ErrPersistence = errors.New("persistence failure")

	// ErrInvalidArgument is returned for caller input that cannot be served.
	ErrInvalidArgument = errors.New("invalid argument")
)

// HTTPStatus maps an error to the status code the HTTP layer responds with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstreamUnavailable),
		errors.Is(err, ErrUpstreamBlocked),
		errors.Is(err, ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
