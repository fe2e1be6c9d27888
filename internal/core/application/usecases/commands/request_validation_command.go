package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrRequestValidationCommandIsNotConstructed = errors.New(
	"RequestValidationCommand must be created via NewRequestValidationCommand constructor",
)

// RequestValidationCommand flags an order for human design review. Requesting
// twice is harmless.
type RequestValidationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRequestValidationCommand(orderID, actorID kernel.UUID) (RequestValidationCommand, error) {
	cmd := RequestValidationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return RequestValidationCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestValidationCommand) Validate() error {
	return c.guard.Validate(ErrRequestValidationCommandIsNotConstructed)
}

func (c RequestValidationCommand) OrderID() kernel.UUID { return c.orderID }
func (c RequestValidationCommand) ActorID() kernel.UUID { return c.actorID }
