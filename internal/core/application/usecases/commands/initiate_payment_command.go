package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/payment"
	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand starts a payment for one of an order's price fields.
// The amount is never supplied by the caller; it is snapshotted from the
// order when the command is handled.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	actorID   kernel.UUID

	paymentType payment.Type
	method      payment.Method
	description string

	guard guard.ConstructorGuard
}

func NewInitiatePaymentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	actorID kernel.UUID,
	paymentType payment.Type,
	method payment.Method,
	description string,
) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentID.Validate(),
		orderID.Validate(),
		actorID.Validate(),
		paymentType.Validate(),
		method.Validate(),
	); err != nil {
		return InitiatePaymentCommand{}, err
	}

	// Subscriptions are billed elsewhere; this command only pays for order
	// phases.
	if !paymentType.IsOrderScoped() {
		return InitiatePaymentCommand{}, errs.NewValueIsInvalidError("paymentType")
	}

	cmd.paymentID = paymentID
	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.paymentType = paymentType
	cmd.method = method
	cmd.description = description

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

func (c InitiatePaymentCommand) PaymentID() kernel.UUID    { return c.paymentID }
func (c InitiatePaymentCommand) OrderID() kernel.UUID      { return c.orderID }
func (c InitiatePaymentCommand) ActorID() kernel.UUID      { return c.actorID }
func (c InitiatePaymentCommand) PaymentType() payment.Type { return c.paymentType }
func (c InitiatePaymentCommand) Method() payment.Method    { return c.method }
func (c InitiatePaymentCommand) Description() string       { return c.description }
