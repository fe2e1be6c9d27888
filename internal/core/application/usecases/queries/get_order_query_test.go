package queries_test

import (
	"testing"

	"printworks/internal/core/application/usecases/queries"
	"printworks/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()
		actorID := kernel.NewUUID()

		query, err := queries.NewGetOrderQuery(orderID, actorID)

		require.NoError(t, err)
		assert.Equal(t, orderID, query.OrderID())
		assert.Equal(t, actorID, query.ActorID())
		assert.NoError(t, query.Validate())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{}, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("zero actor id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrderQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}
