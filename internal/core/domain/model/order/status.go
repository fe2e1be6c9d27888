package order

import (
	"fmt"

	"printworks/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It implements a state machine
// with a closed transition table: a status may only move to the statuses the
// table lists for it, and anything else is rejected as InvalidState.
//
// State transitions:
//
//	PENDING ──────┬──> AWAITING_VALIDATION ──┬──> READY_FOR_PRINT ──> PRINTING ──> SHIPPED ──> DELIVERED
//	              │                          │
//	              │                          └──> NEEDS_ACTION ──(fix paid + FIXED)──> READY_FOR_PRINT
//	              │
//	              └──(payment cleared)──> READY_FOR_PRINT
//
//	DESIGNING ────┬──(payment cleared)──> READY_FOR_PRINT
//	              └──> AWAITING_VALIDATION
//
// Every pre-PRINTING status may also move to CANCELLED. DELIVERED and
// CANCELLED are terminal.
//
// Status persists as one of these fixed strings.
type Status string

const (
	StatusPending            Status = "PENDING"
	StatusAwaitingValidation Status = "AWAITING_VALIDATION"
	StatusNeedsAction        Status = "NEEDS_ACTION"
	StatusDesigning          Status = "DESIGNING"
	StatusReadyForPrint      Status = "READY_FOR_PRINT"
	StatusPrinting           Status = "PRINTING"
	StatusShipped            Status = "SHIPPED"
	StatusDelivered          Status = "DELIVERED"
	StatusCancelled          Status = "CANCELLED"
)

// transitions is the closed table of legal status moves. A status absent from
// a target list can never be reached from that source, no matter who asks.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:            {StatusAwaitingValidation, StatusReadyForPrint, StatusCancelled},
		StatusAwaitingValidation: {StatusReadyForPrint, StatusNeedsAction, StatusCancelled},
		StatusNeedsAction:        {StatusAwaitingValidation, StatusReadyForPrint, StatusCancelled},
		StatusDesigning:          {StatusAwaitingValidation, StatusReadyForPrint, StatusCancelled},
		StatusReadyForPrint:      {StatusPrinting, StatusCancelled},
		StatusPrinting:           {StatusShipped},
		StatusShipped:            {StatusDelivered},
		StatusDelivered:          {},
		StatusCancelled:          {},
	}
}

// Validate checks that the status is one of the nine known states.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the table allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
