package order

import (
	"fmt"

	"printworks/internal/pkg/errs"
)

// ValidationStatus tracks the design-review sub-cycle on an order. The empty
// value means validation was never requested.
//
// PENDING is set when the customer requests review, PASSED/FAILED by the
// validator's report, and FIXED by an admin after a paid fix and re-upload.
type ValidationStatus string

const (
	ValidationNone    ValidationStatus = ""
	ValidationPending ValidationStatus = "PENDING"
	ValidationPassed  ValidationStatus = "PASSED"
	ValidationFailed  ValidationStatus = "FAILED"
	ValidationFixed   ValidationStatus = "FIXED"
)

// Validate checks that the value is one of the known validation states.
// The empty value is valid: it means no validation was requested.
func (v ValidationStatus) Validate() error {
	switch v {
	case ValidationNone, ValidationPending, ValidationPassed, ValidationFailed, ValidationFixed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("validationStatus",
		fmt.Errorf("%q is not a valid validation status", string(v)))
}

func (v ValidationStatus) String() string {
	return string(v)
}
