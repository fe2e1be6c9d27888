package commands

import (
	"context"
	"time"

	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"
)

// SetOrderStatusCommandHandler applies staff fulfilment moves. Only SHIPPED
// and DELIVERED may be set directly; everything else has a dedicated command
// (accept, cancel, validation, payments) so the transition table cannot be
// bypassed.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	notifier   ports.Notifier
}

func NewSetOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	notifier ports.Notifier,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{uowFactory: uowFactory, users: users, notifier: notifier}
}

func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := requireRole(ctx, h.users, cmd.ActorID(), ports.RoleAdmin, ports.RolePrintshop); err != nil {
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

	now := time.Now().UTC()
	switch cmd.Status() {
	case order.StatusShipped:
		err = o.Ship(cmd.TrackingCode(), now)
	case order.StatusDelivered:
		err = o.Deliver(now)
	default:
		err = errs.NewInvalidStateError("set status to "+cmd.Status().String(), o.Status().String())
	}
	if err != nil {
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
