package order_test

import (
	"testing"

	"printworks/internal/core/domain/model/order"
	"printworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusValidate(t *testing.T) {
	valid := []order.Status{
		order.StatusPending,
		order.StatusAwaitingValidation,
		order.StatusNeedsAction,
		order.StatusDesigning,
		order.StatusReadyForPrint,
		order.StatusPrinting,
		order.StatusShipped,
		order.StatusDelivered,
		order.StatusCancelled,
	}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			assert.NoError(t, s.Validate())
		})
	}

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.Status("ON_HOLD").Validate()
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty status", func(t *testing.T) {
		err := order.Status("").Validate()
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())

	for _, s := range []order.Status{
		order.StatusPending, order.StatusAwaitingValidation, order.StatusNeedsAction,
		order.StatusDesigning, order.StatusReadyForPrint, order.StatusPrinting,
		order.StatusShipped,
	} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to order.Status
		want     bool
	}{
		{order.StatusPending, order.StatusAwaitingValidation, true},
		{order.StatusPending, order.StatusReadyForPrint, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPending, order.StatusShipped, false},
		{order.StatusAwaitingValidation, order.StatusNeedsAction, true},
		{order.StatusAwaitingValidation, order.StatusReadyForPrint, true},
		{order.StatusNeedsAction, order.StatusAwaitingValidation, true},
		{order.StatusDesigning, order.StatusReadyForPrint, true},
		{order.StatusDesigning, order.StatusPrinting, false},
		{order.StatusReadyForPrint, order.StatusPrinting, true},
		{order.StatusReadyForPrint, order.StatusShipped, false},
		{order.StatusPrinting, order.StatusShipped, true},
		{order.StatusPrinting, order.StatusCancelled, false},
		{order.StatusShipped, order.StatusDelivered, true},
		{order.StatusShipped, order.StatusCancelled, false},
		{order.StatusDelivered, order.StatusCancelled, false},
		{order.StatusCancelled, order.StatusPending, false},
	}

	for _, tc := range tests {
		name := tc.from.String() + "->" + tc.to.String()
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []order.Status{
		order.StatusPending, order.StatusAwaitingValidation, order.StatusNeedsAction,
		order.StatusDesigning, order.StatusReadyForPrint, order.StatusPrinting,
		order.StatusShipped, order.StatusDelivered, order.StatusCancelled,
	}
	for _, to := range all {
		assert.False(t, order.StatusDelivered.CanTransitionTo(to))
		assert.False(t, order.StatusCancelled.CanTransitionTo(to))
	}
}
