package payment

import (
	"fmt"

	"printworks/internal/pkg/errs"
)

// Type names what a payment is for. Order-scoped types map one-to-one onto
// the order's price fields; SUBSCRIPTION is the only type without an order.
type Type string

const (
	TypeValidation   Type = "VALIDATION"
	TypeDesign       Type = "DESIGN"
	TypeFix          Type = "FIX"
	TypePrint        Type = "PRINT"
	TypeSubscription Type = "SUBSCRIPTION"
)

func (t Type) Validate() error {
	switch t {
	case TypeValidation, TypeDesign, TypeFix, TypePrint, TypeSubscription:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentType",
		fmt.Errorf("%q is not a payment type", string(t)))
}

// IsOrderScoped reports whether the type pays for a phase of an order.
func (t Type) IsOrderScoped() bool {
	return t != TypeSubscription
}

func (t Type) String() string {
	return string(t)
}

// Method is how the money moves: through the payment gateway or by a manual
// card-to-card transfer with an uploaded receipt.
type Method string

const (
	MethodGateway    Method = "GATEWAY"
	MethodCardToCard Method = "CARD_TO_CARD"
)

func (m Method) Validate() error {
	switch m {
	case MethodGateway, MethodCardToCard:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a payment method", string(m)))
}

func (m Method) String() string {
	return string(m)
}
