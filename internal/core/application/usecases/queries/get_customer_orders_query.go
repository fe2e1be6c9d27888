package queries

import (
	"errors"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/pkg/errs"
	"printworks/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetCustomerOrdersQuery lists a customer's orders, newest first, optionally
// filtered by status. Pagination is limit/offset based.
type GetCustomerOrdersQuery struct {
	guard guard.ConstructorGuard

	customerID kernel.UUID
	status     string
	limit      int
	offset     int
}

// NewGetCustomerOrdersQuery creates a listing query for one customer.
// An empty status means no status filter. A non-positive limit falls back to
// the default page size.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	status string,
	limit int,
	offset int,
) (GetCustomerOrdersQuery, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	query := GetCustomerOrdersQuery{
		guard:      guard.NewConstructorGuard(),
		customerID: customerID,
		status:     status,
		limit:      limit,
		offset:     offset,
	}

	var statusErr error
	if status != "" {
		if statusErr = order.Status(status).Validate(); statusErr != nil {
			statusErr = errs.NewValueIsInvalidErrorWithCause("status", statusErr)
		}
	}

	if err := errors.Join(
		customerID.Validate(),
		statusErr,
	); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

func (q GetCustomerOrdersQuery) Status() string { return q.status }

func (q GetCustomerOrdersQuery) Limit() int { return q.limit }

func (q GetCustomerOrdersQuery) Offset() int { return q.offset }
