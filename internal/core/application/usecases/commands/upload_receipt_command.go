package commands

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrUploadReceiptCommandIsNotConstructed = errors.New(
	"UploadReceiptCommand must be created via NewUploadReceiptCommand constructor",
)

// UploadReceiptCommand attaches a transfer receipt to a card-to-card payment.
type UploadReceiptCommand struct { //nolint:recvcheck //using for validation
	paymentID  kernel.UUID
	actorID    kernel.UUID
	receiptURL string

	guard guard.ConstructorGuard
}

func NewUploadReceiptCommand(paymentID, actorID kernel.UUID, receiptURL string) (UploadReceiptCommand, error) {
	cmd := UploadReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(paymentID.Validate(), actorID.Validate()); err != nil {
		return UploadReceiptCommand{}, err
	}
	if receiptURL == "" {
		return UploadReceiptCommand{}, errs.NewValueIsRequiredError("receiptUrl")
	}

	cmd.paymentID = paymentID
	cmd.actorID = actorID
	cmd.receiptURL = receiptURL

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadReceiptCommand) Validate() error {
	return c.guard.Validate(ErrUploadReceiptCommandIsNotConstructed)
}

func (c UploadReceiptCommand) PaymentID() kernel.UUID { return c.paymentID }
func (c UploadReceiptCommand) ActorID() kernel.UUID   { return c.actorID }
func (c UploadReceiptCommand) ReceiptURL() string     { return c.receiptURL }
