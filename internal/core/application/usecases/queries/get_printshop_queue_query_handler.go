package queries

import (
	"context"

	"printworks/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPrintshopQueueQueryHandler reads the print queue from the database.
// Orders no shop has claimed come first-in first-out; the shop's own in-flight
// orders are folded in so a single call shows everything it can act on.
type GetPrintshopQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetPrintshopQueueQueryHandler creates a handler for print queue listings.
func NewGetPrintshopQueueQueryHandler(db *gorm.DB) GetPrintshopQueueQueryHandler {
	return GetPrintshopQueueQueryHandler{db: db}
}

// Handle returns READY_FOR_PRINT orders oldest first, followed by the shop's
// accepted PRINTING orders, within the query's pagination window.
func (h GetPrintshopQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPrintshopQueueQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ?
		   OR (status = ? AND printshop_id = ?)
		ORDER BY
			CASE status WHEN ? THEN 0 ELSE 1 END,
			created_at ASC
		LIMIT ? OFFSET ?
	`,
		order.StatusReadyForPrint,
		order.StatusPrinting, query.PrintshopID().String(),
		order.StatusReadyForPrint,
		query.Limit(), query.Offset(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
