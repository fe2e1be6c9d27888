package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrMarkOrderFixedCommandIsNotConstructed = errors.New(
	"MarkOrderFixedCommand must be created via NewMarkOrderFixedCommand constructor",
)

// MarkOrderFixedCommand closes a failed validation round: the fix fee was
// paid and the customer re-uploaded the corrected design file.
type MarkOrderFixedCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actorID       kernel.UUID
	designFileURL string

	guard guard.ConstructorGuard
}

func NewMarkOrderFixedCommand(orderID, actorID kernel.UUID, designFileURL string) (MarkOrderFixedCommand, error) {
	cmd := MarkOrderFixedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return MarkOrderFixedCommand{}, err
	}
	if designFileURL == "" {
		return MarkOrderFixedCommand{}, errs.NewValueIsRequiredError("designFileUrl")
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.designFileURL = designFileURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderFixedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderFixedCommandIsNotConstructed)
}

func (c MarkOrderFixedCommand) OrderID() kernel.UUID  { return c.orderID }
func (c MarkOrderFixedCommand) ActorID() kernel.UUID  { return c.actorID }
func (c MarkOrderFixedCommand) DesignFileURL() string { return c.designFileURL }
