package commands

import (
	"context"

	"printworks/internal/core/ports"
)

// RejectPaymentCommandHandler settles an AWAITING_APPROVAL payment as FAILED
// with the admin's reason. The customer can initiate a fresh payment.
type RejectPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	users      ports.UserDirectory
	notifier   ports.Notifier
}

func NewRejectPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	users ports.UserDirectory,
	notifier ports.Notifier,
) RejectPaymentCommandHandler {
	return RejectPaymentCommandHandler{uowFactory: uowFactory, users: users, notifier: notifier}
}

func (h *RejectPaymentCommandHandler) Handle(ctx context.Context, cmd RejectPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := requireRole(ctx, h.users, cmd.ActorID(), ports.RoleAdmin); err != nil {
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

	if err = p.Reject(cmd.ActorID(), cmd.Reason()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:      ports.EventPaymentSettled,
		PaymentID:  p.ID().String(),
		CustomerID: p.CustomerID().String(),
		Detail:     p.Status().String() + ": " + cmd.Reason(),
	})
	return nil
}
