package ports

import (
	"context"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/report"
)

// ValidationReportRepository defines the persistence contract for validation
// reports. Reports are append-only; there is no update.
type ValidationReportRepository interface {
	// Add persists a newly filed report.
	Add(ctx context.Context, entity *report.ValidationReport) error

	// GetAllByOrder retrieves every report filed for an order, oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*report.ValidationReport, error)
}
