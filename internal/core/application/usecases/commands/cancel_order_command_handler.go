package commands

import (
	"context"
	"time"

	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order on behalf of its customer or an
// admin.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	notifier   ports.Notifier
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, users: users, notifier: notifier}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor, err := h.users.GetUser(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if actor.Role != ports.RoleAdmin && !o.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the order's customer or an admin may cancel it")
	}

	if err = o.Cancel(time.Now().UTC()); err != nil {
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
