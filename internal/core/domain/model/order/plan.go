package order

import (
	"fmt"

	"printworks/internal/pkg/errs"
)

// DesignPlan is the pricing/workflow tier the customer chose for the order.
//
// Tiers:
//   - PUBLIC: free ready-made template, no revisions
//   - SEMI_PRIVATE: paid custom design with a bounded revision allowance
//   - PRIVATE: paid custom design with unlimited revisions
//   - OWN_DESIGN: customer-supplied artwork, no design phase
//
// DesignPlan persists as one of these fixed strings.
type DesignPlan string

const (
	PlanPublic      DesignPlan = "PUBLIC"
	PlanSemiPrivate DesignPlan = "SEMI_PRIVATE"
	PlanPrivate     DesignPlan = "PRIVATE"
	PlanOwnDesign   DesignPlan = "OWN_DESIGN"
)

func validDesignPlans() map[DesignPlan]struct{} {
	return map[DesignPlan]struct{}{
		PlanPublic:      {},
		PlanSemiPrivate: {},
		PlanPrivate:     {},
		PlanOwnDesign:   {},
	}
}

// Validate checks that the plan is one of the known tiers.
func (p DesignPlan) Validate() error {
	if _, ok := validDesignPlans()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("designPlan",
			fmt.Errorf("%q is not a valid design plan", string(p)))
	}
	return nil
}

// RequiresDesignPhase reports whether a designer works on the order before it
// can go to print. True for the paid custom-design tiers.
func (p DesignPlan) RequiresDesignPhase() bool {
	return p == PlanSemiPrivate || p == PlanPrivate
}

// RequiresDesignFile reports whether the customer must supply artwork at
// creation time. Only OWN_DESIGN orders arrive with their own file.
func (p DesignPlan) RequiresDesignFile() bool {
	return p == PlanOwnDesign
}

func (p DesignPlan) String() string {
	return string(p)
}
