package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand changes an order's malleable fields before work starts.
// Nil fields are left untouched; quantity and prices are not updatable.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	designFileURL   *string
	shippingAddress *string
	customerNotes   *string

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	designFileURL *string,
	shippingAddress *string,
	customerNotes *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.designFileURL = designFileURL
	cmd.shippingAddress = shippingAddress
	cmd.customerNotes = customerNotes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c UpdateOrderCommand) ActorID() kernel.UUID      { return c.actorID }
func (c UpdateOrderCommand) DesignFileURL() *string    { return c.designFileURL }
func (c UpdateOrderCommand) ShippingAddress() *string  { return c.shippingAddress }
func (c UpdateOrderCommand) CustomerNotes() *string    { return c.customerNotes }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
