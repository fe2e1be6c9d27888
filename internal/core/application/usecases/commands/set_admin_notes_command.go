package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrSetAdminNotesCommandIsNotConstructed = errors.New(
	"SetAdminNotesCommand must be created via NewSetAdminNotesCommand constructor",
)

// SetAdminNotesCommand replaces the staff-facing notes on an order. An empty
// string clears them.
type SetAdminNotesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

func NewSetAdminNotesCommand(orderID, actorID kernel.UUID, notes string) (SetAdminNotesCommand, error) {
	cmd := SetAdminNotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return SetAdminNotesCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAdminNotesCommand) Validate() error {
	return c.guard.Validate(ErrSetAdminNotesCommandIsNotConstructed)
}

func (c SetAdminNotesCommand) OrderID() kernel.UUID { return c.orderID }
func (c SetAdminNotesCommand) ActorID() kernel.UUID { return c.actorID }
func (c SetAdminNotesCommand) Notes() string        { return c.notes }
