package kernel

import (
	"fmt"
	"strconv"

	"printworks/internal/pkg/errs"
)

// Money is a value object for monetary amounts with zero fractional digits
// (whole Tomans). Unlike UUID, the zero value is meaningful: it represents a
// zero amount and is valid.
//
// Money is immutable; arithmetic methods return new values. Amounts are never
// negative, which the constructor and Sub enforce.
type Money struct {
	amount int64
}

// NewMoney creates a Money from a whole-unit amount.
// Returns an error for negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the whole-unit amount.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts.
// Returns an error when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d - %d is negative", m.amount, other.amount))
	}
	return Money{amount: m.amount - other.amount}, nil
}

// Mul returns the amount multiplied by a non-negative factor, typically an
// order quantity.
func (m Money) Mul(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}
	return Money{amount: m.amount * factor}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// GreaterOrEqual reports whether m is at least other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount as a plain decimal integer.
func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}
