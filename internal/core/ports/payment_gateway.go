package ports

import (
	"context"

	"printworks/internal/core/domain/model/kernel"
)

// PaymentGateway is the outbound contract to the payment provider.
type PaymentGateway interface {
	// CreatePayment registers a payment intent with the provider and returns
	// the authority token identifying it plus the URL the customer is
	// redirected to.
	CreatePayment(ctx context.Context, amount kernel.Money, description string) (authority string, redirectURL string, err error)

	// VerifyPayment asks the provider for the final verdict on an authority.
	// ok=true comes with the provider's settlement reference.
	VerifyPayment(ctx context.Context, authority string, amount kernel.Money) (ok bool, refID string, err error)
}
