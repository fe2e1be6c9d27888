package payment

import (
	"errors"
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through one of the constructors.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewGatewayPayment, NewCardToCardPayment or RestorePayment")

// Payment is the aggregate root for one payment attempt. Its amount is
// snapshotted from the order at initiation time and never recomputed, so a
// later price change on the order cannot alter an in-flight payment.
type Payment struct {
	id         kernel.UUID
	orderID    *kernel.UUID
	customerID kernel.UUID

	paymentType Type
	method      Method
	amount      kernel.Money
	status      Status

	// authority is the gateway's token for a GATEWAY payment; empty for
	// card-to-card.
	authority string
	// refID is the gateway's settlement reference, set on capture.
	refID string
	// receiptURL is the uploaded transfer receipt for a CARD_TO_CARD payment.
	receiptURL string

	description     string
	approvedBy      *kernel.UUID
	rejectionReason string

	createdAt time.Time
	paidAt    *time.Time

	version int

	isConstructed bool
}

// NewGatewayPayment creates a PENDING payment that will be settled by the
// gateway callback carrying the given authority token.
func NewGatewayPayment(
	id kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	paymentType Type,
	amount kernel.Money,
	authority string,
	description string,
	createdAt time.Time,
) (*Payment, error) {
	p, err := newPayment(id, orderID, customerID, paymentType, MethodGateway, amount, description, createdAt)
	if err != nil {
		return nil, err
	}
	if authority == "" {
		return nil, errs.NewValueIsRequiredError("authority")
	}
	p.authority = authority
	return p, nil
}

// NewCardToCardPayment creates a PENDING payment that will be settled by an
// admin approving the customer's transfer receipt.
func NewCardToCardPayment(
	id kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	paymentType Type,
	amount kernel.Money,
	description string,
	createdAt time.Time,
) (*Payment, error) {
	return newPayment(id, orderID, customerID, paymentType, MethodCardToCard, amount, description, createdAt)
}

func newPayment(
	id kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	paymentType Type,
	method Method,
	amount kernel.Money,
	description string,
	createdAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		paymentType.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}

	if paymentType.IsOrderScoped() {
		if orderID == nil {
			return nil, errs.NewValueIsRequiredError("orderId")
		}
		if err := orderID.Validate(); err != nil {
			return nil, errs.NewValueIsRequiredErrorWithCause("orderId", err)
		}
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("amount")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		paymentType:   paymentType,
		method:        method,
		amount:        amount,
		status:        StatusPending,
		description:   description,
		createdAt:     createdAt,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestorePayment rebuilds a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID *kernel.UUID,
	customerID kernel.UUID,
	paymentType Type,
	method Method,
	amount kernel.Money,
	status Status,
	authority string,
	refID string,
	receiptURL string,
	description string,
	approvedBy *kernel.UUID,
	rejectionReason string,
	createdAt time.Time,
	paidAt *time.Time,
	version int,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		paymentType.Validate(),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("payment")
	}

	return &Payment{
		id:              id,
		orderID:         orderID,
		customerID:      customerID,
		paymentType:     paymentType,
		method:          method,
		amount:          amount,
		status:          status,
		authority:       authority,
		refID:           refID,
		receiptURL:      receiptURL,
		description:     description,
		approvedBy:      approvedBy,
		rejectionReason: rejectionReason,
		createdAt:       createdAt,
		paidAt:          paidAt,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Payment was created via a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// IsEqual compares two payments by identifier.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Payment) ID() kernel.UUID          { return p.id }
func (p *Payment) OrderID() *kernel.UUID    { return p.orderID }
func (p *Payment) CustomerID() kernel.UUID  { return p.customerID }
func (p *Payment) Type() Type               { return p.paymentType }
func (p *Payment) Method() Method           { return p.method }
func (p *Payment) Amount() kernel.Money     { return p.amount }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) Authority() string        { return p.authority }
func (p *Payment) RefID() string            { return p.refID }
func (p *Payment) ReceiptURL() string       { return p.receiptURL }
func (p *Payment) Description() string      { return p.description }
func (p *Payment) ApprovedBy() *kernel.UUID { return p.approvedBy }
func (p *Payment) RejectionReason() string  { return p.rejectionReason }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) PaidAt() *time.Time       { return p.paidAt }
func (p *Payment) Version() int             { return p.version }

// IsTerminal reports whether the payment is settled.
func (p *Payment) IsTerminal() bool {
	return p.status.IsTerminal()
}

// CaptureGateway applies the gateway's verdict for this payment's authority.
//
// Replayed callbacks are harmless: capturing an already-settled payment
// changes nothing and returns captured=false, so the caller can answer the
// gateway without touching the order again.
func (p *Payment) CaptureGateway(ok bool, refID string, at time.Time) (captured bool, err error) {
	if p.method != MethodGateway {
		return false, errs.NewInvalidStateError("capture", p.method.String())
	}
	if p.status.IsTerminal() {
		return false, nil
	}

	if !ok {
		p.status = StatusFailed
		return true, nil
	}

	if refID == "" {
		return false, errs.NewValueIsRequiredError("refId")
	}
	p.refID = refID
	p.paidAt = &at
	p.status = StatusSuccess
	return true, nil
}

// AttachReceipt records the customer's transfer receipt and queues the
// payment for admin approval. Only a PENDING payment accepts a receipt; once
// it is queued the upload is in the admin's hands.
func (p *Payment) AttachReceipt(receiptURL string) error {
	if p.method != MethodCardToCard {
		return errs.NewInvalidStateError("attach receipt", p.method.String())
	}
	if receiptURL == "" {
		return errs.NewValueIsRequiredError("receiptUrl")
	}
	if p.status != StatusPending {
		return errs.NewInvalidStateError("attach receipt", p.status.String())
	}

	p.receiptURL = receiptURL
	p.status = StatusAwaitingApproval
	return nil
}

// Approve settles an AWAITING_APPROVAL payment as SUCCESS.
func (p *Payment) Approve(adminID kernel.UUID, at time.Time) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if p.status != StatusAwaitingApproval {
		return errs.NewInvalidStateError("approve", p.status.String())
	}

	p.approvedBy = &adminID
	p.paidAt = &at
	p.status = StatusSuccess
	return nil
}

// Reject settles an AWAITING_APPROVAL payment as FAILED, recording why. The
// customer can start a fresh payment afterwards.
func (p *Payment) Reject(adminID kernel.UUID, reason string) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	if p.status != StatusAwaitingApproval {
		return errs.NewInvalidStateError("reject", p.status.String())
	}

	p.approvedBy = &adminID
	p.rejectionReason = reason
	p.status = StatusFailed
	return nil
}
