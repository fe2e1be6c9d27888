package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place a new order.
// Carries everything needed to price and create the order aggregate: the
// product, the design plan, the quantity and the validation choice.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, productID,
//	    order.PlanOwnDesign, 100, "https://files/art.pdf", true,
//	    "12 Azadi St, Tehran", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	productID  kernel.UUID

	plan                order.DesignPlan
	quantity            int
	designFileURL       string
	validationRequested bool

	shippingAddress string
	customerNotes   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The OWN_DESIGN file rule and the quantity bounds are enforced later by the
// order aggregate; the command only validates identifiers and the plan.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	productID kernel.UUID,
	plan order.DesignPlan,
	quantity int,
	designFileURL string,
	validationRequested bool,
	shippingAddress string,
	customerNotes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setProductID(productID),
		cmd.setPlan(plan),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.designFileURL = designFileURL
	cmd.validationRequested = validationRequested
	cmd.shippingAddress = shippingAddress
	cmd.customerNotes = customerNotes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID   { return c.customerID }
func (c CreateOrderCommand) ProductID() kernel.UUID    { return c.productID }
func (c CreateOrderCommand) Plan() order.DesignPlan    { return c.plan }
func (c CreateOrderCommand) Quantity() int             { return c.quantity }
func (c CreateOrderCommand) DesignFileURL() string     { return c.designFileURL }
func (c CreateOrderCommand) ValidationRequested() bool { return c.validationRequested }
func (c CreateOrderCommand) ShippingAddress() string   { return c.shippingAddress }
func (c CreateOrderCommand) CustomerNotes() string     { return c.customerNotes }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	c.productID = productID
	return nil
}

func (c *CreateOrderCommand) setPlan(plan order.DesignPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	c.plan = plan
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	c.quantity = quantity
	return nil
}
