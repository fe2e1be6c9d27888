package commands

import (
	"context"

	"printworks/internal/core/domain/model/payment"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"
)

// MarkOrderFixedCommandHandler returns a NEEDS_ACTION order to
// READY_FOR_PRINT once the fix fee has actually been paid.
type MarkOrderFixedCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	users      ports.UserDirectory
	notifier   ports.Notifier
}

func NewMarkOrderFixedCommandHandler(
	uowFactory OrderPaymentUoWFactory,
	users ports.UserDirectory,
	notifier ports.Notifier,
) MarkOrderFixedCommandHandler {
	return MarkOrderFixedCommandHandler{uowFactory: uowFactory, users: users, notifier: notifier}
}

func (h *MarkOrderFixedCommandHandler) Handle(ctx context.Context, cmd MarkOrderFixedCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	paid, err := uow.PaymentRepository().HasSucceededForOrder(ctx, o.ID(), payment.TypeFix)
	if err != nil {
		return err
	}
	if !paid {
		return errs.NewInvalidStateError("mark fixed before the fix fee is paid", o.Status().String())
	}

	if err = o.MarkFixed(cmd.DesignFileURL()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:      ports.EventOrderStatusChanged,
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Detail:     o.Status().String(),
	})
	return nil
}
