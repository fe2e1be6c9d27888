// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and status so the read-side listings stay cheap. The
// Version column backs the conditional update in the repository.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	ProductID           uuid.UUID `gorm:"type:uuid"`
	Plan                string    `gorm:"type:varchar(32)"`
	Status              string    `gorm:"type:varchar(32);index"`
	Quantity            int
	DesignFileURL       string
	ValidationRequested bool
	ValidationStatus    string `gorm:"type:varchar(16)"`
	RevisionCount       int
	MaxRevisions        *int
	DesignPrice         int64
	ValidationPrice     int64
	FixPrice            int64
	PrintPrice          int64
	TotalPrice          int64
	TrackingCode        string
	ShippingAddress     string
	CustomerNotes       string
	AdminNotes          string
	DesignerID          *uuid.UUID `gorm:"type:uuid"`
	AssignedValidatorID *uuid.UUID `gorm:"type:uuid"`
	PrintshopID         *uuid.UUID `gorm:"type:uuid;index"`
	AcceptedAt          *time.Time
	PrintedAt           *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	CancelledAt         *time.Time
	Version             int
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		ProductID:           aggregate.ProductID().Bytes(),
		Plan:                string(aggregate.Plan()),
		Status:              string(aggregate.Status()),
		Quantity:            aggregate.Quantity(),
		DesignFileURL:       aggregate.DesignFileURL(),
		ValidationRequested: aggregate.ValidationRequested(),
		ValidationStatus:    string(aggregate.ValidationStatus()),
		RevisionCount:       aggregate.RevisionCount(),
		MaxRevisions:        aggregate.MaxRevisions(),
		DesignPrice:         aggregate.DesignPrice().Amount(),
		ValidationPrice:     aggregate.ValidationPrice().Amount(),
		FixPrice:            aggregate.FixPrice().Amount(),
		PrintPrice:          aggregate.PrintPrice().Amount(),
		TotalPrice:          aggregate.TotalPrice().Amount(),
		TrackingCode:        aggregate.TrackingCode(),
		ShippingAddress:     aggregate.ShippingAddress(),
		CustomerNotes:       aggregate.CustomerNotes(),
		AdminNotes:          aggregate.AdminNotes(),
		DesignerID:          uuidPtr(aggregate.Designer()),
		AssignedValidatorID: uuidPtr(aggregate.AssignedValidator()),
		PrintshopID:         uuidPtr(aggregate.Printshop()),
		AcceptedAt:          aggregate.AcceptedAt(),
		PrintedAt:           aggregate.PrintedAt(),
		ShippedAt:           aggregate.ShippedAt(),
		DeliveredAt:         aggregate.DeliveredAt(),
		CancelledAt:         aggregate.CancelledAt(),
		Version:             aggregate.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	designerID, err := kernelUUIDPtr(dto.DesignerID)
	if err != nil {
		return nil, err
	}
	validatorID, err := kernelUUIDPtr(dto.AssignedValidatorID)
	if err != nil {
		return nil, err
	}
	printshopID, err := kernelUUIDPtr(dto.PrintshopID)
	if err != nil {
		return nil, err
	}

	designPrice, err := kernel.NewMoney(dto.DesignPrice)
	if err != nil {
		return nil, err
	}
	validationPrice, err := kernel.NewMoney(dto.ValidationPrice)
	if err != nil {
		return nil, err
	}
	fixPrice, err := kernel.NewMoney(dto.FixPrice)
	if err != nil {
		return nil, err
	}
	printPrice, err := kernel.NewMoney(dto.PrintPrice)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		productID,
		order.DesignPlan(dto.Plan),
		order.Status(dto.Status),
		dto.Quantity,
		dto.DesignFileURL,
		dto.ValidationRequested,
		order.ValidationStatus(dto.ValidationStatus),
		designerID,
		validatorID,
		printshopID,
		dto.RevisionCount,
		dto.MaxRevisions,
		designPrice,
		validationPrice,
		fixPrice,
		printPrice,
		totalPrice,
		dto.TrackingCode,
		dto.ShippingAddress,
		dto.CustomerNotes,
		dto.AdminNotes,
		dto.AcceptedAt,
		dto.PrintedAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		dto.Version,
	)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
