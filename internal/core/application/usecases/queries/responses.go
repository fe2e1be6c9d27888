// Package queries contains the read side of the CQRS split: thin handlers
// running raw SQL against the store and returning flat response rows, never
// domain aggregates.
package queries

import "time"

// OrderResponse is the read model of an order row.
type OrderResponse struct {
	ID                  string     `json:"id"`
	CustomerID          string     `json:"customer_id"`
	ProductID           string     `json:"product_id"`
	Plan                string     `json:"plan"`
	Status              string     `json:"status"`
	Quantity            int        `json:"quantity"`
	DesignFileURL       string     `json:"design_file_url,omitempty"`
	ValidationRequested bool       `json:"validation_requested"`
	ValidationStatus    string     `json:"validation_status,omitempty"`
	RevisionCount       int        `json:"revision_count"`
	MaxRevisions        *int       `json:"max_revisions"`
	DesignPrice         int64      `json:"design_price"`
	ValidationPrice     int64      `json:"validation_price"`
	FixPrice            int64      `json:"fix_price"`
	PrintPrice          int64      `json:"print_price"`
	TotalPrice          int64      `json:"total_price"`
	TrackingCode        string     `json:"tracking_code,omitempty"`
	ShippingAddress     string     `json:"shipping_address,omitempty"`
	CustomerNotes       string     `json:"customer_notes,omitempty"`
	AdminNotes          string     `json:"admin_notes,omitempty"`
	DesignerID          *string    `json:"designer_id"`
	AssignedValidatorID *string    `json:"assigned_validator_id"`
	PrintshopID         *string    `json:"printshop_id"`
	AcceptedAt          *time.Time `json:"accepted_at"`
	PrintedAt           *time.Time `json:"printed_at"`
	ShippedAt           *time.Time `json:"shipped_at"`
	DeliveredAt         *time.Time `json:"delivered_at"`
	CancelledAt         *time.Time `json:"cancelled_at"`
	CreatedAt           time.Time  `json:"created_at"`
}

// PaymentResponse is the read model of a payment row.
type PaymentResponse struct {
	ID              string     `json:"id"`
	OrderID         *string    `json:"order_id"`
	CustomerID      string     `json:"customer_id"`
	PaymentType     string     `json:"payment_type"`
	Method          string     `json:"method"`
	Amount          int64      `json:"amount"`
	Status          string     `json:"status"`
	RefID           string     `json:"ref_id,omitempty"`
	ReceiptURL      string     `json:"receipt_url,omitempty"`
	Description     string     `json:"description,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	PaidAt          *time.Time `json:"paid_at"`
}

// ValidationReportResponse is the read model of a filed report.
type ValidationReportResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ValidatorID string          `json:"validator_id"`
	Outcome     string          `json:"outcome"`
	Issues      []IssueResponse `json:"issues"`
	FixCost     int64           `json:"fix_cost"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IssueResponse is one issue inside a validation report.
type IssueResponse struct {
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}
