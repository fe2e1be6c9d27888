package queries

import (
	"context"

	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order row and enforces the ownership
// rule for customer actors.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	users ports.UserDirectory
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB, users ports.UserDirectory) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, users: users}
}

// Handle fetches the order. Returns errs.ErrObjectNotFound when no such order
// exists and errs.ErrForbidden when a customer asks for somebody else's order.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	actor, err := h.users.GetUser(ctx, query.ActorID())
	if err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if actor.Role == ports.RoleCustomer && resp.CustomerID != query.ActorID().String() {
		return OrderResponse{}, errs.NewForbiddenError(
			query.ActorID().String(), "order belongs to another customer")
	}

	return resp, nil
}
