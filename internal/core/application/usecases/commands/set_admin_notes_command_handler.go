package commands

import (
	"context"

	"printworks/internal/core/ports"
)

// SetAdminNotesCommandHandler updates the staff-facing notes on an order.
type SetAdminNotesCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
}

func NewSetAdminNotesCommandHandler(uowFactory OrderUoWFactory, users ports.UserDirectory) SetAdminNotesCommandHandler {
	return SetAdminNotesCommandHandler{uowFactory: uowFactory, users: users}
}

func (h *SetAdminNotesCommandHandler) Handle(ctx context.Context, cmd SetAdminNotesCommand) error {
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

	if err = o.SetAdminNotes(cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
