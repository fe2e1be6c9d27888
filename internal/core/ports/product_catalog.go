package ports

import (
	"context"

	"printworks/internal/core/domain/model/kernel"
)

// Product is the catalog's view of a sellable print product.
type Product struct {
	ID        kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Active    bool
}

// ProductCatalog resolves product data needed to price an order.
type ProductCatalog interface {
	// GetProduct retrieves a product by its identifier, or
	// errs.ErrObjectNotFound when it does not exist.
	GetProduct(ctx context.Context, id kernel.UUID) (Product, error)
}
