package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// paymentColumns is the column list every payment query selects, in the order
// scanPaymentRow expects.
const paymentColumns = `id, order_id, customer_id, payment_type, method,
		amount, status, ref_id, receipt_url, description, rejection_reason,
		created_at, paid_at`

func scanPaymentRow(rows *sql.Rows) (PaymentResponse, error) {
	var (
		id, customerID                        uuid.UUID
		orderID                               uuid.NullUUID
		paymentType, method, status           string
		amount                                int64
		refID, receiptURL                     sql.NullString
		description, rejectionReason          sql.NullString
		createdAt                             time.Time
		paidAt                                sql.NullTime
	)

	err := rows.Scan(
		&id, &orderID, &customerID, &paymentType, &method,
		&amount, &status, &refID, &receiptURL, &description, &rejectionReason,
		&createdAt, &paidAt,
	)
	if err != nil {
		return PaymentResponse{}, err
	}

	return PaymentResponse{
		ID:              id.String(),
		OrderID:         nullUUIDString(orderID),
		CustomerID:      customerID.String(),
		PaymentType:     paymentType,
		Method:          method,
		Amount:          amount,
		Status:          status,
		RefID:           refID.String,
		ReceiptURL:      receiptURL.String,
		Description:     description.String,
		RejectionReason: rejectionReason.String,
		CreatedAt:       createdAt,
		PaidAt:          nullTimePtr(paidAt),
	}, nil
}
