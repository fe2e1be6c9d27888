// Package psp implements the payment gateway port against a sandbox provider.
// The sandbox keeps created payment intents in memory and settles them on
// verification, which is enough for local development and tests; a production
// deployment swaps in a client for the real provider behind the same port.
package psp

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/pkg/errs"

	"go.uber.org/zap"
)

// SandboxGateway implements ports.PaymentGateway in memory. Authorities look
// like the real provider's ("A" plus 32 hex characters) so callback plumbing
// is exercised end to end.
type SandboxGateway struct {
	redirectBaseURL string
	logger          *zap.Logger

	mu      sync.Mutex
	intents map[string]intent
	seq     int
}

type intent struct {
	amount int64
	refID  string
}

// NewSandboxGateway creates a sandbox gateway. Redirect URLs are built from
// the given base, typically the provider's payment page.
func NewSandboxGateway(redirectBaseURL string, logger *zap.Logger) *SandboxGateway {
	return &SandboxGateway{
		redirectBaseURL: redirectBaseURL,
		logger:          logger,
		intents:         make(map[string]intent),
	}
}

// CreatePayment registers a payment intent and returns its authority token
// plus the URL the customer is redirected to.
func (g *SandboxGateway) CreatePayment(
	_ context.Context,
	amount kernel.Money,
	description string,
) (string, string, error) {
	if !amount.IsPositive() {
		return "", "", errs.NewValueIsInvalidError("amount")
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	authority := "A" + hex.EncodeToString(raw)

	g.mu.Lock()
	g.intents[authority] = intent{amount: amount.Amount()}
	g.mu.Unlock()

	redirectURL := fmt.Sprintf("%s/%s", g.redirectBaseURL, authority)

	g.logger.Debug("payment intent created",
		zap.String("authority", authority),
		zap.Int64("amount", amount.Amount()),
		zap.String("description", description))

	return authority, redirectURL, nil
}

// VerifyPayment settles a known intent. The verdict is ok only when the
// authority exists and the amount matches what the intent was created with.
// Verifying an already settled intent returns the same reference again,
// mirroring provider replay semantics.
func (g *SandboxGateway) VerifyPayment(
	_ context.Context,
	authority string,
	amount kernel.Money,
) (bool, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	stored, known := g.intents[authority]
	if !known {
		return false, "", nil
	}
	if stored.amount != amount.Amount() {
		return false, "", nil
	}

	if stored.refID == "" {
		g.seq++
		stored.refID = fmt.Sprintf("REF-%06d", g.seq)
		g.intents[authority] = stored
	}

	return true, stored.refID, nil
}
