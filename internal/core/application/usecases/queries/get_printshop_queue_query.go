package queries

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/guard"
)

var ErrGetPrintshopQueueQueryIsNotConstructed = errors.New(
	"GetPrintshopQueueQuery must be created via NewGetPrintshopQueueQuery constructor",
)

// GetPrintshopQueueQuery lists the work visible to one print shop: the shared
// READY_FOR_PRINT queue in arrival order, plus the orders this shop has
// already accepted and is printing.
type GetPrintshopQueueQuery struct {
	guard guard.ConstructorGuard

	printshopID kernel.UUID
	limit       int
	offset      int
}

// NewGetPrintshopQueueQuery creates a queue query for one print shop.
func NewGetPrintshopQueueQuery(
	printshopID kernel.UUID,
	limit int,
	offset int,
) (GetPrintshopQueueQuery, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	query := GetPrintshopQueueQuery{
		guard:       guard.NewConstructorGuard(),
		printshopID: printshopID,
		limit:       limit,
		offset:      offset,
	}

	if err := printshopID.Validate(); err != nil {
		return GetPrintshopQueueQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPrintshopQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPrintshopQueueQueryIsNotConstructed)
}

func (q GetPrintshopQueueQuery) PrintshopID() kernel.UUID { return q.printshopID }

func (q GetPrintshopQueueQuery) Limit() int { return q.limit }

func (q GetPrintshopQueueQuery) Offset() int { return q.offset }
