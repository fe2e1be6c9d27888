package payment

import (
	"fmt"

	"printworks/internal/pkg/errs"
)

// Status is the settlement state of a payment.
type Status string

const (
	// StatusPending is the initial state of every payment.
	StatusPending Status = "PENDING"
	// StatusAwaitingApproval is a card-to-card payment whose receipt is
	// uploaded and waiting for an admin decision.
	StatusAwaitingApproval Status = "AWAITING_APPROVAL"
	// StatusSuccess is terminal: the money arrived.
	StatusSuccess Status = "SUCCESS"
	// StatusFailed is terminal: the attempt was declined or rejected.
	StatusFailed Status = "FAILED"
)

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusAwaitingApproval, StatusSuccess, StatusFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a payment status", string(s)))
}

// IsTerminal reports whether the payment is settled and immutable.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}
