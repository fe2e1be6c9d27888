package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/report"
	"printworks/internal/pkg/guard"
)

var ErrSubmitValidationReportCommandIsNotConstructed = errors.New(
	"SubmitValidationReportCommand must be created via NewSubmitValidationReportCommand constructor",
)

// SubmitValidationReportCommand files a validator's verdict on an order that
// is awaiting validation. A FAILED verdict carries the found issues and the
// cost of fixing them.
type SubmitValidationReportCommand struct { //nolint:recvcheck //using for validation
	reportID kernel.UUID
	orderID  kernel.UUID
	actorID  kernel.UUID

	outcome report.Outcome
	issues  []report.Issue
	fixCost kernel.Money
	notes   string

	guard guard.ConstructorGuard
}

func NewSubmitValidationReportCommand(
	reportID kernel.UUID,
	orderID kernel.UUID,
	actorID kernel.UUID,
	outcome report.Outcome,
	issues []report.Issue,
	fixCost kernel.Money,
	notes string,
) (SubmitValidationReportCommand, error) {
	cmd := SubmitValidationReportCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reportID.Validate(),
		orderID.Validate(),
		actorID.Validate(),
		outcome.Validate(),
	); err != nil {
		return SubmitValidationReportCommand{}, err
	}

	cmd.reportID = reportID
	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.outcome = outcome
	cmd.issues = issues
	cmd.fixCost = fixCost
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitValidationReportCommand) Validate() error {
	return c.guard.Validate(ErrSubmitValidationReportCommandIsNotConstructed)
}

func (c SubmitValidationReportCommand) ReportID() kernel.UUID   { return c.reportID }
func (c SubmitValidationReportCommand) OrderID() kernel.UUID    { return c.orderID }
func (c SubmitValidationReportCommand) ActorID() kernel.UUID    { return c.actorID }
func (c SubmitValidationReportCommand) Outcome() report.Outcome { return c.outcome }
func (c SubmitValidationReportCommand) Issues() []report.Issue  { return c.issues }
func (c SubmitValidationReportCommand) FixCost() kernel.Money   { return c.fixCost }
func (c SubmitValidationReportCommand) Notes() string           { return c.notes }
