package commands

import (
	"context"

	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"
)

// UploadReceiptCommandHandler queues a card-to-card payment for admin
// approval once the payer uploads the transfer receipt.
type UploadReceiptCommandHandler struct {
	uowFactory PaymentUoWFactory
	notifier   ports.Notifier
}

func NewUploadReceiptCommandHandler(uowFactory PaymentUoWFactory, notifier ports.Notifier) UploadReceiptCommandHandler {
	return UploadReceiptCommandHandler{uowFactory: uowFactory, notifier: notifier}
}

func (h *UploadReceiptCommandHandler) Handle(ctx context.Context, cmd UploadReceiptCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	p, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}
	if !p.CustomerID().IsEqual(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the payer may upload a receipt")
	}

	if err = p.AttachReceipt(cmd.ReceiptURL()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:      ports.EventPaymentAwaitsApproval,
		PaymentID:  p.ID().String(),
		CustomerID: p.CustomerID().String(),
	})
	return nil
}
