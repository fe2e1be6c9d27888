package queries

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by identifier.
// Customers only see their own orders; staff roles see any order.
type GetOrderQuery struct {
	guard guard.ConstructorGuard

	orderID kernel.UUID
	actorID kernel.UUID
}

// NewGetOrderQuery creates a query to fetch one order on behalf of an actor.
func NewGetOrderQuery(orderID, actorID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard:   guard.NewConstructorGuard(),
		orderID: orderID,
		actorID: actorID,
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetOrderQuery) ActorID() kernel.UUID { return q.actorID }
