package commands

import (
	"context"

	"printworks/internal/pkg/errs"
)

// RequestRevisionCommandHandler counts an owner's revision request against
// the order's allowance.
type RequestRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRequestRevisionCommandHandler(uowFactory OrderUoWFactory) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{uowFactory: uowFactory}
}

func (h *RequestRevisionCommandHandler) Handle(ctx context.Context, cmd RequestRevisionCommand) error {
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
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the order's customer may request a revision")
	}

	if err = o.RequestRevision(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
