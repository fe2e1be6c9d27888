package paymentrepo

import (
	"context"
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/payment"
	"printworks/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment, conditional on the version the aggregate
// was loaded with, the same way the order repository does it.
func (r *GormPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loadedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("payment")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAuthority retrieves the gateway payment carrying the given authority
// token.
func (r *GormPaymentRepository) GetByAuthority(ctx context.Context, authority string) (*payment.Payment, error) {
	if authority == "" {
		return nil, errs.NewValueIsRequiredError("authority")
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "authority = ?", authority).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", authority)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByOrderAndType retrieves the single non-terminal payment of the
// given type on the given order.
func (r *GormPaymentRepository) GetOpenByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	paymentType payment.Type,
) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND payment_type = ? AND status IN ?",
			orderID.Bytes(), string(paymentType),
			[]string{string(payment.StatusPending), string(payment.StatusAwaitingApproval)}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// HasSucceededForOrder reports whether a payment of the given type has
// already settled as SUCCESS on the order.
func (r *GormPaymentRepository) HasSucceededForOrder(
	ctx context.Context,
	orderID kernel.UUID,
	paymentType payment.Type,
) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("order_id = ? AND payment_type = ? AND status = ?",
			orderID.Bytes(), string(paymentType), string(payment.StatusSuccess)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllInAwaitingApprovalStatus retrieves all card-to-card payments waiting
// for an admin decision, oldest first.
func (r *GormPaymentRepository) GetAllInAwaitingApprovalStatus(ctx context.Context) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "status = ?", string(payment.StatusAwaitingApproval)).
		Error
	if err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, nil
}
