package commands

import (
	"context"
	"time"

	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/domain/model/report"
	"printworks/internal/core/ports"
)

// SubmitValidationReportCommandHandler files the report and moves the order
// in the same transaction: PASSED sends it to READY_FOR_PRINT, FAILED parks
// it in NEEDS_ACTION with the fix priced in. The report history is
// append-only; every filed report stays queryable.
type SubmitValidationReportCommandHandler struct {
	uowFactory ValidationUoWFactory
	users      ports.UserDirectory
	notifier   ports.Notifier
}

func NewSubmitValidationReportCommandHandler(
	uowFactory ValidationUoWFactory,
	users ports.UserDirectory,
	notifier ports.Notifier,
) SubmitValidationReportCommandHandler {
	return SubmitValidationReportCommandHandler{uowFactory: uowFactory, users: users, notifier: notifier}
}

func (h *SubmitValidationReportCommandHandler) Handle(ctx context.Context, cmd SubmitValidationReportCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := requireRole(ctx, h.users, cmd.ActorID(), ports.RoleValidator); err != nil {
		return err
	}

	filed, err := report.NewValidationReport(
		cmd.ReportID(), cmd.OrderID(), cmd.ActorID(),
		cmd.Outcome(), cmd.Issues(), cmd.FixCost(), cmd.Notes(),
		time.Now().UTC(),
	)
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

	outcome := order.ValidationPassed
	if cmd.Outcome() == report.OutcomeFailed {
		outcome = order.ValidationFailed
	}
	if err = o.ApplyValidationReport(cmd.ActorID(), outcome, cmd.FixCost()); err != nil {
		return err
	}

	if err = uow.ValidationReportRepository().Add(ctx, filed); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:      ports.EventValidationReportFiled,
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Detail:     cmd.Outcome().String(),
	})
	return nil
}
