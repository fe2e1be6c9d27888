package order

import (
	"fmt"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
)

// Pricing is the price breakdown computed once at order creation. The fix
// price is never part of it: fixes are priced later by a validation report.
//
// MaxRevisions carries the plan's revision allowance; nil means unlimited.
type Pricing struct {
	Design       kernel.Money
	Validation   kernel.Money
	Print        kernel.Money
	Total        kernel.Money
	MaxRevisions *int
}

// Validate checks the pricing identity: total equals the sum of its parts.
func (p Pricing) Validate() error {
	sum := p.Design.Add(p.Validation).Add(p.Print)
	if !p.Total.IsEqual(sum) {
		return errs.NewValueIsInvalidErrorWithCause("pricing",
			fmt.Errorf("total %s does not equal design %s + validation %s + print %s",
				p.Total, p.Design, p.Validation, p.Print))
	}
	if p.MaxRevisions != nil && *p.MaxRevisions < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricing",
			fmt.Errorf("max revisions %d is negative", *p.MaxRevisions))
	}
	return nil
}
