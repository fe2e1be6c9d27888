package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetValidationReportsQueryHandler reads an order's validation reports from
// the database.
type GetValidationReportsQueryHandler struct {
	db *gorm.DB
}

// NewGetValidationReportsQueryHandler creates a handler for report listings.
func NewGetValidationReportsQueryHandler(db *gorm.DB) GetValidationReportsQueryHandler {
	return GetValidationReportsQueryHandler{db: db}
}

// Handle returns the order's reports newest first. Issues are stored as a
// JSON document alongside the report row and decoded here.
func (h GetValidationReportsQueryHandler) Handle(
	ctx context.Context,
	query GetValidationReportsQuery,
) ([]ValidationReportResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, validator_id, outcome, issues, fix_cost, notes, created_at
		FROM validation_reports
		WHERE order_id = ?
		ORDER BY created_at DESC
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]ValidationReportResponse, 0)
	for rows.Next() {
		var (
			id, orderID, validatorID uuid.UUID
			outcome                  string
			issuesJSON               []byte
			fixCost                  int64
			notes                    string
			createdAt                time.Time
		)

		err = rows.Scan(&id, &orderID, &validatorID, &outcome,
			&issuesJSON, &fixCost, &notes, &createdAt)
		if err != nil {
			return nil, err
		}

		issues := make([]IssueResponse, 0)
		if len(issuesJSON) > 0 {
			if err = json.Unmarshal(issuesJSON, &issues); err != nil {
				return nil, err
			}
		}

		reports = append(reports, ValidationReportResponse{
			ID:          id.String(),
			OrderID:     orderID.String(),
			ValidatorID: validatorID.String(),
			Outcome:     outcome,
			Issues:      issues,
			FixCost:     fixCost,
			Notes:       notes,
			CreatedAt:   createdAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}
