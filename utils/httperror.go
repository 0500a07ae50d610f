package utils

import (
	"errors"
	"net/http"

	"bid-marketplace/internal/marketerrors"
)

// MapErrorToHTTP maps domain/service errors to HTTP status code and the
// user-facing message. Anything unrecognized is a server-side failure and
// stays generic; the wrapped cause only goes to the logs.
func MapErrorToHTTP(err error) (int, string) {
	var validationErr *marketerrors.ValidationError
	var tooLowErr *marketerrors.BidTooLowError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Reason
	case errors.As(err, &tooLowErr):
		return http.StatusBadRequest, tooLowErr.Error()
	case errors.Is(err, marketerrors.ErrItemNotFound):
		return http.StatusBadRequest, "Invalid item"
	case errors.Is(err, marketerrors.ErrEmailTaken):
		return http.StatusConflict, "Email already registered."
	case errors.Is(err, marketerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
