package commands

import (
	"errors"

	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrHandlePaymentCallbackCommandIsNotConstructed = errors.New(
	"HandlePaymentCallbackCommand must be created via NewHandlePaymentCallbackCommand constructor",
)

// HandlePaymentCallbackCommand is the inbound gateway callback: the
// authority token the redirect was created with, plus the gateway's claimed
// result. The claim is re-verified against the provider before settling.
type HandlePaymentCallbackCommand struct { //nolint:recvcheck //using for validation
	authority string
	ok        bool

	guard guard.ConstructorGuard
}

func NewHandlePaymentCallbackCommand(authority string, ok bool) (HandlePaymentCallbackCommand, error) {
	cmd := HandlePaymentCallbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if authority == "" {
		return HandlePaymentCallbackCommand{}, errs.NewValueIsRequiredError("authority")
	}

	cmd.authority = authority
	cmd.ok = ok

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HandlePaymentCallbackCommand) Validate() error {
	return c.guard.Validate(ErrHandlePaymentCallbackCommandIsNotConstructed)
}

func (c HandlePaymentCallbackCommand) Authority() string { return c.authority }
func (c HandlePaymentCallbackCommand) OK() bool          { return c.ok }
