package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrApprovePaymentCommandIsNotConstructed = errors.New(
	"ApprovePaymentCommand must be created via NewApprovePaymentCommand constructor",
)

// ApprovePaymentCommand is an admin accepting an uploaded transfer receipt.
type ApprovePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewApprovePaymentCommand(paymentID, actorID kernel.UUID) (ApprovePaymentCommand, error) {
	cmd := ApprovePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(paymentID.Validate(), actorID.Validate()); err != nil {
		return ApprovePaymentCommand{}, err
	}

	cmd.paymentID = paymentID
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePaymentCommand) Validate() error {
	return c.guard.Validate(ErrApprovePaymentCommandIsNotConstructed)
}

func (c ApprovePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c ApprovePaymentCommand) ActorID() kernel.UUID   { return c.actorID }
