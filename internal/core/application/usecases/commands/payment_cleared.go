package commands

import (
	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/domain/model/payment"
)

// applyPaymentCleared moves an order forward after a payment of the given
// type settled as SUCCESS.
//
// DESIGN and PRINT payments clear the work gate: a DESIGNING order, or a
// PENDING order that never asked for validation, becomes READY_FOR_PRINT.
// FIX payments do not move the order by themselves; they enable the separate
// mark-fixed step. VALIDATION payments never move the order.
func applyPaymentCleared(o *order.Order, paymentType payment.Type) (moved bool, err error) {
	switch paymentType {
	case payment.TypeDesign, payment.TypePrint:
	default:
		return false, nil
	}

	if o.Status() != order.StatusDesigning && o.Status() != order.StatusPending {
		return false, nil
	}
	if o.ValidationStatus() == order.ValidationPending {
		return false, nil
	}

	if err := o.MarkReadyForPrint(); err != nil {
		return false, err
	}
	return true, nil
}
