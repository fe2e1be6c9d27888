package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a print shop picking a READY_FOR_PRINT order off the
// queue. The actor is the accepting print shop.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID, actorID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AcceptOrderCommand) ActorID() kernel.UUID { return c.actorID }
