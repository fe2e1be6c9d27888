package reportrepo

import (
	"context"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/report"

	"gorm.io/gorm"
)

// GormValidationReportRepository implements ValidationReportRepository using
// GORM. The table is append-only, so there is no update path and no version
// column.
type GormValidationReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormValidationReportRepository creates a new GORM validation report
// repository.
func NewGormValidationReportRepository(db *gorm.DB, tracker aggregateTracker) *GormValidationReportRepository {
	return &GormValidationReportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly filed report to the database.
func (r *GormValidationReportRepository) Add(ctx context.Context, entity *report.ValidationReport) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entity)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// GetAllByOrder retrieves every report filed for an order, oldest first.
func (r *GormValidationReportRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*report.ValidationReport, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ValidationReportDTO
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&dtos, "order_id = ?", orderID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	reports := make([]*report.ValidationReport, 0, len(dtos))
	for _, dto := range dtos {
		entity, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reports = append(reports, entity)
	}

	return reports, nil
}
