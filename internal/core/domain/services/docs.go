// Package services provides domain services that implement business rules
// spanning more than one aggregate or requiring policy knowledge that does
// not belong inside a single entity.
//
// The package includes:
//   - PriceCalculator: computes an order's price breakdown from its plan,
//     quantity and validation choice before the order aggregate is created.
package services
