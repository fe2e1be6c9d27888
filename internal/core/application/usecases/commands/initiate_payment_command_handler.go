package commands

import (
	"context"
	"errors"
	"time"

	"printworks/internal/core/domain/model/payment"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"
)

// InitiatePaymentResult is what the caller needs to continue the flow: for a
// GATEWAY payment the customer is redirected to the provider; for a
// CARD_TO_CARD payment the next step is uploading a receipt.
type InitiatePaymentResult struct {
	PaymentID   string
	Authority   string
	RedirectURL string
}

// InitiatePaymentCommandHandler creates a payment for an order phase. The
// amount comes from the order's matching price field, and at most one
// non-terminal payment per (order, type) may exist at a time.
type InitiatePaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	gateway    ports.PaymentGateway
}

func NewInitiatePaymentCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	gateway ports.PaymentGateway,
) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{uowFactory: uowFactory, gateway: gateway}
}

func (h *InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return InitiatePaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	if !o.IsOwnedBy(cmd.ActorID()) {
		return InitiatePaymentResult{}, errs.NewForbiddenError(cmd.ActorID().String(), "only the order's customer may pay for it")
	}

	amount, err := o.PriceFor(cmd.PaymentType().String())
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	if !amount.IsPositive() {
		return InitiatePaymentResult{}, errs.NewValueIsInvalidErrorWithCause("paymentType",
			errors.New("the order has nothing to pay for this type"))
	}

	paymentRepo := uow.PaymentRepository()
	open, err := paymentRepo.GetOpenByOrderAndType(ctx, o.ID(), cmd.PaymentType())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return InitiatePaymentResult{}, err
	}
	if open != nil {
		return InitiatePaymentResult{}, errs.NewConflictingPaymentError(o.ID().String(), cmd.PaymentType().String())
	}

	orderID := o.ID()
	now := time.Now().UTC()

	var created *payment.Payment
	var redirectURL string
	switch cmd.Method() {
	case payment.MethodGateway:
		var authority string
		authority, redirectURL, err = h.gateway.CreatePayment(ctx, amount, cmd.Description())
		if err != nil {
			return InitiatePaymentResult{}, err
		}
		created, err = payment.NewGatewayPayment(
			cmd.PaymentID(), &orderID, o.CustomerID(),
			cmd.PaymentType(), amount, authority, cmd.Description(), now,
		)
	case payment.MethodCardToCard:
		created, err = payment.NewCardToCardPayment(
			cmd.PaymentID(), &orderID, o.CustomerID(),
			cmd.PaymentType(), amount, cmd.Description(), now,
		)
	}
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = paymentRepo.Add(ctx, created); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	return InitiatePaymentResult{
		PaymentID:   created.ID().String(),
		Authority:   created.Authority(),
		RedirectURL: redirectURL,
	}, nil
}
