// Package catalogrepo implements the product catalog port over the products
// table. The catalog is reference data maintained outside the order flow, so
// the adapter is read-only.
package catalogrepo

import (
	"context"
	"errors"
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	UnitPrice int64
	Active    bool
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements ports.ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetProduct retrieves a product by ID.
func (r *GormProductCatalog) GetProduct(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	if err := id.Validate(); err != nil {
		return ports.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return ports.Product{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:        productID,
		Name:      dto.Name,
		UnitPrice: unitPrice,
		Active:    dto.Active,
	}, nil
}
