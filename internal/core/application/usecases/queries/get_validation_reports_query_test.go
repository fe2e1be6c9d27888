package queries_test

import (
	"testing"

	"printworks/internal/core/application/usecases/queries"
	"printworks/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetValidationReportsQuery(t *testing.T) {
	t.Run("valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetValidationReportsQuery(orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, query.OrderID())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := queries.NewGetValidationReportsQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetValidationReportsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetValidationReportsQueryIsNotConstructed)
	})
}

func TestNewGetOrderPaymentsQuery(t *testing.T) {
	t.Run("valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		query, err := queries.NewGetOrderPaymentsQuery(orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, query.OrderID())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderPaymentsQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrderPaymentsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetOrderPaymentsQueryIsNotConstructed)
	})
}
