package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrRejectPaymentCommandIsNotConstructed = errors.New(
	"RejectPaymentCommand must be created via NewRejectPaymentCommand constructor",
)

// RejectPaymentCommand is an admin refusing an uploaded transfer receipt.
type RejectPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	actorID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

func NewRejectPaymentCommand(paymentID, actorID kernel.UUID, reason string) (RejectPaymentCommand, error) {
	cmd := RejectPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(paymentID.Validate(), actorID.Validate()); err != nil {
		return RejectPaymentCommand{}, err
	}
	if reason == "" {
		return RejectPaymentCommand{}, errs.NewValueIsRequiredError("reason")
	}

	cmd.paymentID = paymentID
	cmd.actorID = actorID
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRejectPaymentCommandIsNotConstructed)
}

func (c RejectPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c RejectPaymentCommand) ActorID() kernel.UUID   { return c.actorID }
func (c RejectPaymentCommand) Reason() string         { return c.reason }
