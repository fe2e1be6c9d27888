package commands

import (
	"context"

	"printworks/internal/pkg/errs"
)

// RequestValidationCommandHandler parks an order in AWAITING_VALIDATION at
// its owner's request. The operation is idempotent.
type RequestValidationCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRequestValidationCommandHandler(uowFactory OrderUoWFactory) RequestValidationCommandHandler {
	return RequestValidationCommandHandler{uowFactory: uowFactory}
}

func (h *RequestValidationCommandHandler) Handle(ctx context.Context, cmd RequestValidationCommand) error {
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
		return errs.NewForbiddenError(cmd.ActorID().String(), "only the order's customer may request validation")
	}

	if err = o.RequestValidation(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
