package report

import (
	"errors"
	"fmt"
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
)

// ErrReportIsNotConstructed is returned when a ValidationReport instance was
// not created through NewValidationReport or RestoreValidationReport.
var ErrReportIsNotConstructed = errors.New("ValidationReport must be created via NewValidationReport or RestoreValidationReport")

// Outcome is the verdict of a validation pass.
type Outcome string

const (
	OutcomePassed Outcome = "PASSED"
	OutcomeFailed Outcome = "FAILED"
)

func (o Outcome) Validate() error {
	switch o {
	case OutcomePassed, OutcomeFailed:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("outcome",
		fmt.Errorf("%q is not a report outcome", string(o)))
}

func (o Outcome) String() string {
	return string(o)
}

// Severity grades a single found issue.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

func (s Severity) Validate() error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("severity",
		fmt.Errorf("%q is not a severity", string(s)))
}

// Issue is one concrete problem found in the design file.
type Issue struct {
	Kind        string
	Severity    Severity
	Description string
	Suggestion  string
}

func (i Issue) Validate() error {
	return errors.Join(
		i.Severity.Validate(),
		func() error {
			if i.Kind == "" {
				return errs.NewValueIsRequiredError("issue.kind")
			}
			return nil
		}(),
		func() error {
			if i.Description == "" {
				return errs.NewValueIsRequiredError("issue.description")
			}
			return nil
		}(),
	)
}

// ValidationReport is what a validator files after reviewing a design.
// A failed report carries at least one issue and the cost of fixing them;
// a passed report carries neither.
type ValidationReport struct {
	id          kernel.UUID
	orderID     kernel.UUID
	validatorID kernel.UUID

	outcome Outcome
	issues  []Issue
	fixCost kernel.Money
	notes   string

	createdAt time.Time

	isConstructed bool
}

// NewValidationReport files a new report.
func NewValidationReport(
	id kernel.UUID,
	orderID kernel.UUID,
	validatorID kernel.UUID,
	outcome Outcome,
	issues []Issue,
	fixCost kernel.Money,
	notes string,
	createdAt time.Time,
) (*ValidationReport, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		validatorID.Validate(),
		outcome.Validate(),
	); err != nil {
		return nil, err
	}

	for _, issue := range issues {
		if err := issue.Validate(); err != nil {
			return nil, err
		}
	}

	if outcome == OutcomeFailed && len(issues) == 0 {
		return nil, errs.NewValueIsRequiredError("issues")
	}
	if outcome == OutcomePassed {
		if len(issues) > 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("issues",
				errors.New("a passed report cannot carry issues"))
		}
		if !fixCost.IsZero() {
			return nil, errs.NewValueIsInvalidErrorWithCause("fixCost",
				errors.New("a passed report cannot carry a fix cost"))
		}
	}

	return &ValidationReport{
		id:            id,
		orderID:       orderID,
		validatorID:   validatorID,
		outcome:       outcome,
		issues:        issues,
		fixCost:       fixCost,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreValidationReport rebuilds a report from persistence.
func RestoreValidationReport(
	id kernel.UUID,
	orderID kernel.UUID,
	validatorID kernel.UUID,
	outcome Outcome,
	issues []Issue,
	fixCost kernel.Money,
	notes string,
	createdAt time.Time,
) (*ValidationReport, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		validatorID.Validate(),
		outcome.Validate(),
	); err != nil {
		return nil, err
	}

	return &ValidationReport{
		id:            id,
		orderID:       orderID,
		validatorID:   validatorID,
		outcome:       outcome,
		issues:        issues,
		fixCost:       fixCost,
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the report was created via a constructor.
func (r *ValidationReport) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReportIsNotConstructed
	}
	return nil
}

func (r *ValidationReport) ID() kernel.UUID          { return r.id }
func (r *ValidationReport) OrderID() kernel.UUID     { return r.orderID }
func (r *ValidationReport) ValidatorID() kernel.UUID { return r.validatorID }
func (r *ValidationReport) Outcome() Outcome         { return r.outcome }
func (r *ValidationReport) FixCost() kernel.Money    { return r.fixCost }
func (r *ValidationReport) Notes() string            { return r.notes }
func (r *ValidationReport) CreatedAt() time.Time     { return r.createdAt }

// Issues returns a copy so callers cannot mutate the report.
func (r *ValidationReport) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}

// Passed reports whether the validation pass succeeded.
func (r *ValidationReport) Passed() bool {
	return r.outcome == OutcomePassed
}
