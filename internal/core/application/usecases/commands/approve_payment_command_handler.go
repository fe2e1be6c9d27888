package commands

import (
	"context"
	"time"

	"printworks/internal/core/ports"
)

// ApprovePaymentCommandHandler settles an AWAITING_APPROVAL payment as
// SUCCESS and reconciles the order, mirroring what a gateway capture does.
type ApprovePaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	users      ports.UserDirectory
	notifier   ports.Notifier
}

func NewApprovePaymentCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	users ports.UserDirectory,
	notifier ports.Notifier,
) ApprovePaymentCommandHandler {
	return ApprovePaymentCommandHandler{uowFactory: uowFactory, users: users, notifier: notifier}
}

func (h *ApprovePaymentCommandHandler) Handle(ctx context.Context, cmd ApprovePaymentCommand) error {
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

	if err = p.Approve(cmd.ActorID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, p); err != nil {
		return err
	}

	moved := false
	var o orderSnapshot
	if p.OrderID() != nil {
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
