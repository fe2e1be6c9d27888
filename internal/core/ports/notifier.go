package ports

import (
	"context"
)

// Notification event names.
const (
	EventOrderCreated          = "order.created"
	EventOrderStatusChanged    = "order.status_changed"
	EventPaymentSettled        = "payment.settled"
	EventPaymentAwaitsApproval = "payment.awaits_approval"
	EventValidationReportFiled = "validation.report_filed"
)

// Notification is an outbound customer/staff notification event. Delivery is
// fire-and-forget: losing one must never fail the command that produced it.
type Notification struct {
	Event      string `json:"event"`
	OrderID    string `json:"order_id,omitempty"`
	PaymentID  string `json:"payment_id,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	Detail     string `json:"detail,omitempty"`
}

// Notifier publishes notifications to the messaging backbone.
type Notifier interface {
	Publish(ctx context.Context, notification Notification)
}
