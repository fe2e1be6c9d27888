package queries_test

import (
	"testing"

	"printworks/internal/core/application/usecases/queries"
	"printworks/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPrintshopQueueQuery(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		printshopID := kernel.NewUUID()

		query, err := queries.NewGetPrintshopQueueQuery(printshopID, 50, 10)

		require.NoError(t, err)
		assert.Equal(t, printshopID, query.PrintshopID())
		assert.Equal(t, 50, query.Limit())
		assert.Equal(t, 10, query.Offset())
	})

	t.Run("zero printshop id", func(t *testing.T) {
		_, err := queries.NewGetPrintshopQueueQuery(kernel.UUID{}, 10, 0)

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetPrintshopQueueQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetPrintshopQueueQueryIsNotConstructed)
	})
}
