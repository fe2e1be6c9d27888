package queries

import (
	"errors"

	"printworks/internal/pkg/guard"
)

var ErrGetAwaitingApprovalPaymentsQueryIsNotConstructed = errors.New(
	"GetAwaitingApprovalPaymentsQuery must be created via NewGetAwaitingApprovalPaymentsQuery constructor",
)

// GetAwaitingApprovalPaymentsQuery lists every card-to-card payment whose
// receipt is waiting on an admin decision. The approval reminder job runs
// this query on its schedule.
type GetAwaitingApprovalPaymentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAwaitingApprovalPaymentsQuery creates a query for the approval backlog.
func NewGetAwaitingApprovalPaymentsQuery() GetAwaitingApprovalPaymentsQuery {
	return GetAwaitingApprovalPaymentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAwaitingApprovalPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingApprovalPaymentsQueryIsNotConstructed)
}
