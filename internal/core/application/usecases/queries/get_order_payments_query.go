package queries

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrGetOrderPaymentsQueryIsNotConstructed = errors.New(
	"GetOrderPaymentsQuery must be created via NewGetOrderPaymentsQuery constructor",
)

// GetOrderPaymentsQuery lists every payment attempt recorded against one
// order, oldest first, so the full payment history reads top to bottom.
type GetOrderPaymentsQuery struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
}

// NewGetOrderPaymentsQuery creates a payment listing query for one order.
func NewGetOrderPaymentsQuery(orderID kernel.UUID) (GetOrderPaymentsQuery, error) {
	query := GetOrderPaymentsQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderPaymentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPaymentsQueryIsNotConstructed)
}

func (q GetOrderPaymentsQuery) OrderID() kernel.UUID { return q.orderID }
