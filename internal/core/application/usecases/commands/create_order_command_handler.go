package commands

import (
	"context"
	"errors"

	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/domain/services"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement: it resolves the product,
// computes the price breakdown and creates the order in its initial status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	calculator services.PriceCalculator
	notifier   ports.Notifier
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	calculator services.PriceCalculator,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		calculator: calculator,
		notifier:   notifier,
	}
}

// Handle processes the order placement command. The price breakdown is
// computed once here and frozen on the aggregate; later lifecycle steps only
// ever increase it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !product.Active {
		// An inactive product is not orderable, same as one that never existed.
		return errs.NewObjectNotFoundErrorWithCause("productId", cmd.ProductID(), errors.New("product is not active"))
	}

	pricing, err := h.calculator.Calculate(cmd.Plan(), cmd.Quantity(), product.UnitPrice, cmd.ValidationRequested())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.ProductID(),
		cmd.Plan(), cmd.Quantity(), cmd.DesignFileURL(), cmd.ValidationRequested(),
		cmd.ShippingAddress(), cmd.CustomerNotes(),
		pricing,
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

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ctx, ports.Notification{
		Event:      ports.EventOrderCreated,
		OrderID:    newOrder.ID().String(),
		CustomerID: newOrder.CustomerID().String(),
		Detail:     newOrder.Status().String(),
	})
	return nil
}
