package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/pkg/guard"
)

var ErrAssignStaffCommandIsNotConstructed = errors.New(
	"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
)

// AssignStaffCommand attaches a designer, validator or print shop to an order.
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actorID    kernel.UUID
	role       order.StaffRole
	assigneeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignStaffCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	role order.StaffRole,
	assigneeID kernel.UUID,
) (AssignStaffCommand, error) {
	cmd := AssignStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		role.Validate(),
		assigneeID.Validate(),
	); err != nil {
		return AssignStaffCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.role = role
	cmd.assigneeID = assigneeID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

func (c AssignStaffCommand) OrderID() kernel.UUID    { return c.orderID }
func (c AssignStaffCommand) ActorID() kernel.UUID    { return c.actorID }
func (c AssignStaffCommand) Role() order.StaffRole   { return c.role }
func (c AssignStaffCommand) AssigneeID() kernel.UUID { return c.assigneeID }
