package http

import (
	"errors"
	"net/http"
	"testing"

	"printworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError("actor", "not yours"), http.StatusForbidden},
		{"invalid state", errs.NewInvalidStateError("ship", "PENDING"), http.StatusConflict},
		{"conflicting payment", errs.NewConflictingPaymentError("42", "PRINT"), http.StatusConflict},
		{"version conflict", errs.NewVersionIsInvalidError("order"), http.StatusConflict},
		{"revision limit", errs.NewRevisionLimitExceededError(4, 3), http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("plan"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("authority"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000000), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestErrorBody_HidesInternalDetails(t *testing.T) {
	code, body := errorBody(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal error", body.Message)
}
