package commands

import (
	"context"
	"time"

	"printworks/internal/core/ports"
)

// HandlePaymentCallbackCommandHandler settles a gateway payment from the
// provider's callback and reconciles the order in the same transaction.
//
// The gateway may deliver the same callback more than once. A callback for an
// already-settled payment is detected inside the aggregate and handled as a
// no-op, so replays are safe and never move the order twice.
type HandlePaymentCallbackCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
}

func NewHandlePaymentCallbackCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
) HandlePaymentCallbackCommandHandler {
	return HandlePaymentCallbackCommandHandler{uowFactory: uowFactory, gateway: gateway, notifier: notifier}
}

func (h *HandlePaymentCallbackCommandHandler) Handle(ctx context.Context, cmd HandlePaymentCallbackCommand) error {
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
	p, err := paymentRepo.GetByAuthority(ctx, cmd.Authority())
	if err != nil {
		return err
	}
	if p.IsTerminal() {
		// Replay of an already-settled callback.
		return uow.Commit(ctx)
	}

	ok := cmd.OK()
	var refID string
	if ok {
		// Never trust the redirect parameters alone.
		ok, refID, err = h.gateway.VerifyPayment(ctx, p.Authority(), p.Amount())
		if err != nil {
			return err
		}
	}

	captured, err := p.CaptureGateway(ok, refID, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	moved := false
	var o orderSnapshot
	if captured && p.Status().IsTerminal() && ok && p.OrderID() != nil {
		orderRepo := uow.OrderRepository()
		loaded, err := orderRepo.Get(ctx, *p.OrderID())
		if err != nil {
			return err
		}
		if moved, err = applyPaymentCleared(loaded, p.Type()); err != nil {
			return err
		}
		if moved {
			if err = orderRepo.Update(ctx, loaded); err != nil {
				return err
			}
		}
		o = orderSnapshot{id: loaded.ID().String(), customerID: loaded.CustomerID().String(), status: loaded.Status().String()}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:      ports.EventPaymentSettled,
		PaymentID:  p.ID().String(),
		OrderID:    o.id,
		CustomerID: p.CustomerID().String(),
		Detail:     p.Status().String(),
	})
	if moved {
		h.notifier.Publish(ctx, ports.Notification{
			Event:      ports.EventOrderStatusChanged,
			OrderID:    o.id,
			CustomerID: o.customerID,
			Detail:     o.status,
		})
	}
	return nil
}

type orderSnapshot struct {
	id         string
	customerID string
	status     string
}
