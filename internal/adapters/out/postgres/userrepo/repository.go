// Package userrepo implements the user directory port over the users table.
// Accounts are provisioned elsewhere; the order flow only reads them for
// authorization decisions.
package userrepo

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

// UserDTO represents the database structure for platform accounts.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"type:varchar(16);index"`
	Name      string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements ports.UserDirectory using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// GetUser retrieves a user by ID.
func (r *GormUserDirectory) GetUser(ctx context.Context, id kernel.UUID) (ports.User, error) {
	if err := id.Validate(); err != nil {
		return ports.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.User{}, err
	}

	userID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.User{}, err
	}

	role := ports.Role(dto.Role)
	if err = role.Validate(); err != nil {
		return ports.User{}, err
	}

	return ports.User{
		ID:   userID,
		Role: role,
		Name: dto.Name,
	}, nil
}
