package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrRequestRevisionCommandIsNotConstructed = errors.New(
	"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
)

// RequestRevisionCommand asks the designer for another round of changes,
// counted against the plan's revision allowance.
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRequestRevisionCommand(orderID, actorID kernel.UUID) (RequestRevisionCommand, error) {
	cmd := RequestRevisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return RequestRevisionCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRevisionCommand) Validate() error {
	return c.guard.Validate(ErrRequestRevisionCommandIsNotConstructed)
}

func (c RequestRevisionCommand) OrderID() kernel.UUID { return c.orderID }
func (c RequestRevisionCommand) ActorID() kernel.UUID { return c.actorID }
