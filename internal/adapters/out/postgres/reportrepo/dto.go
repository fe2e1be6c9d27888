// Package reportrepo provides data transfer objects and mapping functions
// for validation report persistence. Reports are append-only rows; issues
// live in a JSON column on the report row itself.
package reportrepo

import (
	"encoding/json"
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/report"

	"github.com/google/uuid"
)

// ValidationReportDTO represents the database structure for persisting
// validation reports.
type ValidationReportDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ValidatorID uuid.UUID `gorm:"type:uuid"`
	Outcome     string    `gorm:"type:varchar(16)"`
	Issues      []byte    `gorm:"type:jsonb"`
	FixCost     int64
	Notes       string
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "validation_reports".
func (ValidationReportDTO) TableName() string {
	return "validation_reports"
}

// issueDocument is the JSON shape one issue takes inside the Issues column.
type issueDocument struct {
	Kind        string `json:"kind"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion,omitempty"`
}

func fromDomain(entity *report.ValidationReport) (ValidationReportDTO, error) {
	issues := entity.Issues()
	docs := make([]issueDocument, 0, len(issues))
	for _, issue := range issues {
		docs = append(docs, issueDocument{
			Kind:        issue.Kind,
			Severity:    string(issue.Severity),
			Description: issue.Description,
			Suggestion:  issue.Suggestion,
		})
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return ValidationReportDTO{}, err
	}

	return ValidationReportDTO{
		ID:          entity.ID().Bytes(),
		OrderID:     entity.OrderID().Bytes(),
		ValidatorID: entity.ValidatorID().Bytes(),
		Outcome:     string(entity.Outcome()),
		Issues:      raw,
		FixCost:     entity.FixCost().Amount(),
		Notes:       entity.Notes(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func toDomain(dto ValidationReportDTO) (*report.ValidationReport, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	validatorID, err := kernel.UUIDFromBytes(dto.ValidatorID[:])
	if err != nil {
		return nil, err
	}
	fixCost, err := kernel.NewMoney(dto.FixCost)
	if err != nil {
		return nil, err
	}

	docs := make([]issueDocument, 0)
	if len(dto.Issues) > 0 {
		if err = json.Unmarshal(dto.Issues, &docs); err != nil {
			return nil, err
		}
	}

	issues := make([]report.Issue, 0, len(docs))
	for _, doc := range docs {
		issues = append(issues, report.Issue{
			Kind:        doc.Kind,
			Severity:    report.Severity(doc.Severity),
			Description: doc.Description,
			Suggestion:  doc.Suggestion,
		})
	}

	return report.RestoreValidationReport(
		id,
		orderID,
		validatorID,
		report.Outcome(dto.Outcome),
		issues,
		fixCost,
		dto.Notes,
		dto.CreatedAt,
	)
}
