// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. Authority carries a unique index because the gateway callback
// looks payments up by it.
type PaymentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID         *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	PaymentType     string     `gorm:"type:varchar(16)"`
	Method          string     `gorm:"type:varchar(16)"`
	Amount          int64
	Status          string `gorm:"type:varchar(24);index"`
	Authority       string `gorm:"uniqueIndex:idx_payments_authority,where:authority <> ''"`
	RefID           string
	ReceiptURL      string
	Description     string
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	PaidAt          *time.Time
	Version         int
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         uuidPtr(aggregate.OrderID()),
		CustomerID:      aggregate.CustomerID().Bytes(),
		PaymentType:     string(aggregate.Type()),
		Method:          string(aggregate.Method()),
		Amount:          aggregate.Amount().Amount(),
		Status:          string(aggregate.Status()),
		Authority:       aggregate.Authority(),
		RefID:           aggregate.RefID(),
		ReceiptURL:      aggregate.ReceiptURL(),
		Description:     aggregate.Description(),
		ApprovedBy:      uuidPtr(aggregate.ApprovedBy()),
		RejectionReason: aggregate.RejectionReason(),
		CreatedAt:       aggregate.CreatedAt(),
		PaidAt:          aggregate.PaidAt(),
		Version:         aggregate.Version(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernelUUIDPtr(dto.OrderID)
	if err != nil {
		return nil, err
	}
	approvedBy, err := kernelUUIDPtr(dto.ApprovedBy)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		customerID,
		payment.Type(dto.PaymentType),
		payment.Method(dto.Method),
		amount,
		payment.Status(dto.Status),
		dto.Authority,
		dto.RefID,
		dto.ReceiptURL,
		dto.Description,
		approvedBy,
		dto.RejectionReason,
		dto.CreatedAt,
		dto.PaidAt,
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
