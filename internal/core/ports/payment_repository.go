package ports

import (
	"context"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate. The write is
	// conditional on the loaded version, like OrderRepository.Update.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByAuthority retrieves the gateway payment carrying the given
	// authority token. Used by the gateway callback.
	GetByAuthority(ctx context.Context, authority string) (*payment.Payment, error)

	// GetOpenByOrderAndType retrieves the single non-terminal payment of the
	// given type on the given order, or errs.ErrObjectNotFound when none is
	// open. Used to refuse duplicate payment initiation.
	GetOpenByOrderAndType(ctx context.Context, orderID kernel.UUID, paymentType payment.Type) (*payment.Payment, error)

	// HasSucceededForOrder reports whether a payment of the given type has
	// already settled as SUCCESS on the order.
	HasSucceededForOrder(ctx context.Context, orderID kernel.UUID, paymentType payment.Type) (bool, error)

	// GetAllInAwaitingApprovalStatus retrieves all card-to-card payments
	// waiting for an admin decision.
	GetAllInAwaitingApprovalStatus(ctx context.Context) ([]*payment.Payment, error)
}
