package commands

import (
	"context"

	"printworks/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies owner edits to a PENDING or NEEDS_ACTION
// order.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the order's customer may update it")
	}

	if err = o.UpdateDetails(cmd.DesignFileURL(), cmd.ShippingAddress(), cmd.CustomerNotes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
