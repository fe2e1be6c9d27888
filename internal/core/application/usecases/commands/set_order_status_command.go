package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand is the staff fulfilment move: shipping a printed
// order (with its tracking code) or confirming delivery. Other statuses are
// reachable only through their dedicated operations, never by naming a
// status directly.
type SetOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorID      kernel.UUID
	status       order.Status
	trackingCode string

	guard guard.ConstructorGuard
}

func NewSetOrderStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	status order.Status,
	trackingCode string,
) (SetOrderStatusCommand, error) {
	cmd := SetOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		status.Validate(),
	); err != nil {
		return SetOrderStatusCommand{}, err
	}

	if status == order.StatusShipped && trackingCode == "" {
		return SetOrderStatusCommand{}, errs.NewValueIsRequiredError("trackingCode")
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.status = status
	cmd.trackingCode = trackingCode

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) OrderID() kernel.UUID  { return c.orderID }
func (c SetOrderStatusCommand) ActorID() kernel.UUID  { return c.actorID }
func (c SetOrderStatusCommand) Status() order.Status  { return c.status }
func (c SetOrderStatusCommand) TrackingCode() string  { return c.trackingCode }
