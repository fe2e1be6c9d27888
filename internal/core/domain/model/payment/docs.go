// Package payment contains the Payment aggregate: a single attempt to pay for
// one purpose on one order (validation, design, fix, print) or for a
// subscription.
//
// A payment is captured through exactly one of two methods. GATEWAY payments
// are settled by the payment provider's callback; CARD_TO_CARD payments are
// settled by an admin approving an uploaded receipt. SUCCESS and FAILED are
// terminal, and a settled payment never changes again.
package payment
