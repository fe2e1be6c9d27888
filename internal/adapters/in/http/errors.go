package http

import (
	"errors"
	"net/http"

	"printworks/internal/pkg/errs"
)

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps domain errors to HTTP status codes. Validation failures are
// the client's fault; state-machine refusals, payment conflicts and version
// conflicts are all 409 because retrying with fresh state may succeed.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflictingPayment),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrRevisionLimitExceeded):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) (int, ErrorResponse) {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	return code, ErrorResponse{Code: code, Message: message}
}
