// Package guard provides a constructor guard for command and value objects.
// Embedding a ConstructorGuard lets a type detect whether it was built through
// its designated constructor or left as a zero value, so validation can reject
// improperly initialized objects before any work is done with them.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil validation error, so validation still fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// "not constructed"; only NewConstructorGuard produces a passing guard.
//
// Example:
//
//	type InitiatePaymentCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewInitiatePaymentCommand(orderID kernel.UUID) (InitiatePaymentCommand, error) {
//	    // validate fields...
//	    return InitiatePaymentCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c InitiatePaymentCommand) Validate() error {
//	    return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as built
// through its constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
