package commands

import (
	"context"

	"printworks/internal/core/ports"
)

// AssignStaffCommandHandler lets an admin attach staff to an order. The
// assignee's account must exist; assignment never changes the order status.
type AssignStaffCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
}

func NewAssignStaffCommandHandler(uowFactory OrderUoWFactory, users ports.UserDirectory) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{uowFactory: uowFactory, users: users}
}

func (h *AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := requireRole(ctx, h.users, cmd.ActorID(), ports.RoleAdmin); err != nil {
		return err
	}
	if _, err := h.users.GetUser(ctx, cmd.AssigneeID()); err != nil {
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

	if err = o.Assign(cmd.Role(), cmd.AssigneeID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
