package services

import (
	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/pkg/errs"
)

// Price policy, in Tomans. Print price is the product's unit price times the
// quantity; the rest are flat fees keyed by the chosen plan.
const (
	ValidationFee        int64 = 50000
	SemiPrivateDesignFee int64 = 600000
	PrivateDesignFee     int64 = 5000000
)

// Revision allowances per plan. PRIVATE has no cap.
const semiPrivateMaxRevisions = 3

// PriceCalculator is a domain service that turns a plan, a quantity and a
// product's unit price into the full price breakdown an order is created
// with. The breakdown is computed once, at order creation; later price
// changes (a fix fee after a failed validation) are applied by the order
// itself.
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Calculate returns the price breakdown for an order.
//
// Rules:
//   - print price = unit price * quantity, for every plan
//   - design fee: SEMI_PRIVATE and PRIVATE pay their flat fee, others pay 0
//   - validation fee applies only when the customer requests validation
//   - revision allowance: SEMI_PRIVATE gets 3, PRIVATE is unlimited (nil),
//     PUBLIC and OWN_DESIGN get 0
func (c PriceCalculator) Calculate(
	plan order.DesignPlan,
	quantity int,
	unitPrice kernel.Money,
	validationRequested bool,
) (order.Pricing, error) {
	if err := plan.Validate(); err != nil {
		return order.Pricing{}, err
	}
	if quantity < 1 {
		return order.Pricing{}, errs.NewValueIsInvalidError("quantity")
	}

	printPrice, err := unitPrice.Mul(int64(quantity))
	if err != nil {
		return order.Pricing{}, err
	}

	designPrice := kernel.ZeroMoney()
	var maxRevisions *int
	switch plan {
	case order.PlanSemiPrivate:
		designPrice, err = kernel.NewMoney(SemiPrivateDesignFee)
		allowance := semiPrivateMaxRevisions
		maxRevisions = &allowance
	case order.PlanPrivate:
		designPrice, err = kernel.NewMoney(PrivateDesignFee)
	default:
		allowance := 0
		maxRevisions = &allowance
	}
	if err != nil {
		return order.Pricing{}, err
	}

	validationPrice := kernel.ZeroMoney()
	if validationRequested {
		if validationPrice, err = kernel.NewMoney(ValidationFee); err != nil {
			return order.Pricing{}, err
		}
	}

	return order.Pricing{
		Design:       designPrice,
		Validation:   validationPrice,
		Print:        printPrice,
		Total:        designPrice.Add(validationPrice).Add(printPrice),
		MaxRevisions: maxRevisions,
	}, nil
}
