package queries

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrGetValidationReportsQueryIsNotConstructed = errors.New(
	"GetValidationReportsQuery must be created via NewGetValidationReportsQuery constructor",
)

// GetValidationReportsQuery lists the validation reports filed against one
// order, newest first.
type GetValidationReportsQuery struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
}

// NewGetValidationReportsQuery creates a report listing query for one order.
func NewGetValidationReportsQuery(orderID kernel.UUID) (GetValidationReportsQuery, error) {
	query := GetValidationReportsQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
	}

	if err := orderID.Validate(); err != nil {
		return GetValidationReportsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetValidationReportsQuery) Validate() error {
	return q.guard.Validate(ErrGetValidationReportsQueryIsNotConstructed)
}

func (q GetValidationReportsQuery) OrderID() kernel.UUID { return q.orderID }
