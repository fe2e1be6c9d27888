// Package order contains the Order aggregate and its supporting value objects:
// the lifecycle Status machine, the DesignPlan tier, the ValidationStatus of
// the design-review sub-cycle, and the Pricing breakdown computed at creation.
//
// Order is the aggregate root of the platform. Every mutation goes through a
// guarded method that checks the closed status-transition table before
// writing, so illegal or duplicate transitions are rejected as InvalidState
// instead of silently advancing the workflow.
//
// Key invariants:
//   - total price always equals design + validation + fix + print
//   - price fields never decrease after creation; only the fix price may be
//     set later, by a failed validation report
//   - lifecycle timestamps are set exactly once, in lifecycle order
//   - DELIVERED and CANCELLED are terminal
package order
