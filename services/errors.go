package services

import (
	"errors"
	"net/http"
)

// Error kinds surfaced by the social services. Already-following,
// already-blocked and already-requested are not errors: those calls return a
// successful result describing the existing state.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// ApiError carries a caller-safe message alongside its kind. Database detail
// stays out of Message and is logged server-side only.
type ApiError struct {
	Kind    error
	Message string
}

func (e *ApiError) Error() string { return e.Message }

func (e *ApiError) Unwrap() error { return e.Kind }

func ValidationError(message string) error {
	return &ApiError{Kind: ErrValidation, Message: message}
}

func NotFoundError(message string) error {
	return &ApiError{Kind: ErrNotFound, Message: message}
}

func ForbiddenError(message string) error {
	return &ApiError{Kind: ErrForbidden, Message: message}
}

// HTTPStatus maps a service error to the response code controllers should
// use. Anything unrecognized is an internal failure.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the caller-safe message for err, hiding internal
// detail behind a generic line.
func PublicMessage(err error) string {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong"
}
