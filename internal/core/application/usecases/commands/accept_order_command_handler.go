package commands

import (
	"context"
	"time"

	"printworks/internal/core/ports"
)

// AcceptOrderCommandHandler moves a READY_FOR_PRINT order into PRINTING on
// behalf of the accepting print shop.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	notifier   ports.Notifier
}

func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	notifier ports.Notifier,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{uowFactory: uowFactory, users: users, notifier: notifier}
}

func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := requireRole(ctx, h.users, cmd.ActorID(), ports.RolePrintshop); err != nil {
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

	if err = o.AcceptByPrintshop(cmd.ActorID(), time.Now().UTC()); err != nil {
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
