// Package kernel provides core domain primitives for the printworks system.
// It implements the fundamental building blocks used throughout the domain
// model, following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a fixed-point monetary amount with zero fractional digits
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
