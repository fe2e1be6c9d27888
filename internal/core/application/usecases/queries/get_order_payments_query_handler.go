package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderPaymentsQueryHandler reads an order's payment history from the
// database.
type GetOrderPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderPaymentsQueryHandler creates a handler for order payment listings.
func NewGetOrderPaymentsQueryHandler(db *gorm.DB) GetOrderPaymentsQueryHandler {
	return GetOrderPaymentsQueryHandler{db: db}
}

// Handle returns the order's payments oldest first.
func (h GetOrderPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE order_id = ?
		ORDER BY created_at ASC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]PaymentResponse, 0)
	for rows.Next() {
		resp, scanErr := scanPaymentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		payments = append(payments, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
