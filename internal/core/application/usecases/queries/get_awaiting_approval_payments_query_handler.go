package queries

import (
	"context"

	"printworks/internal/core/domain/model/payment"

	"gorm.io/gorm"
)

// GetAwaitingApprovalPaymentsQueryHandler reads the approval backlog from the
// database.
type GetAwaitingApprovalPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAwaitingApprovalPaymentsQueryHandler creates a handler for the
// approval backlog query.
func NewGetAwaitingApprovalPaymentsQueryHandler(db *gorm.DB) GetAwaitingApprovalPaymentsQueryHandler {
	return GetAwaitingApprovalPaymentsQueryHandler{db: db}
}

// Handle returns payments in AWAITING_APPROVAL, oldest first, so the longest
// waiting receipt is decided first.
func (h GetAwaitingApprovalPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetAwaitingApprovalPaymentsQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE status = ?
		ORDER BY created_at ASC
	`, payment.StatusAwaitingApproval).Rows()
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
