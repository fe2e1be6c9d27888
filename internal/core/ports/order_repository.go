package ports

import (
	"context"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// conditional on the version the aggregate was loaded with; a concurrent
	// writer makes Update fail with errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
