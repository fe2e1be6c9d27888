package payment_test

import (
	"testing"
	"time"

	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/payment"
	"printworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func amount(t *testing.T, v int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(v)
	require.NoError(t, err)
	return m
}

func newGateway(t *testing.T) *payment.Payment {
	t.Helper()
	orderID := kernel.NewUUID()
	p, err := payment.NewGatewayPayment(
		kernel.NewUUID(), &orderID, kernel.NewUUID(),
		payment.TypePrint, amount(t, 250000), "A000012345", "print run", now,
	)
	require.NoError(t, err)
	return p
}

func newCardToCard(t *testing.T) *payment.Payment {
	t.Helper()
	orderID := kernel.NewUUID()
	p, err := payment.NewCardToCardPayment(
		kernel.NewUUID(), &orderID, kernel.NewUUID(),
		payment.TypeFix, amount(t, 120000), "fix after failed validation", now,
	)
	require.NoError(t, err)
	return p
}

func TestNewGatewayPayment(t *testing.T) {
	t.Run("should create PENDING gateway payment", func(t *testing.T) {
		p := newGateway(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, payment.MethodGateway, p.Method())
		assert.Equal(t, "A000012345", p.Authority())
		assert.Equal(t, int64(250000), p.Amount().Amount())
		assert.Equal(t, 1, p.Version())
		assert.False(t, p.IsTerminal())
	})

	t.Run("should require an authority token", func(t *testing.T) {
		orderID := kernel.NewUUID()
		p, err := payment.NewGatewayPayment(
			kernel.NewUUID(), &orderID, kernel.NewUUID(),
			payment.TypePrint, amount(t, 250000), "", "", now,
		)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require an order for order-scoped types", func(t *testing.T) {
		p, err := payment.NewGatewayPayment(
			kernel.NewUUID(), nil, kernel.NewUUID(),
			payment.TypeDesign, amount(t, 600000), "A1", "", now,
		)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "orderId")
	})

	t.Run("should allow SUBSCRIPTION without an order", func(t *testing.T) {
		p, err := payment.NewGatewayPayment(
			kernel.NewUUID(), nil, kernel.NewUUID(),
			payment.TypeSubscription, amount(t, 900000), "A2", "monthly plan", now,
		)

		require.NoError(t, err)
		assert.Nil(t, p.OrderID())
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		orderID := kernel.NewUUID()
		p, err := payment.NewGatewayPayment(
			kernel.NewUUID(), &orderID, kernel.NewUUID(),
			payment.TypePrint, kernel.ZeroMoney(), "A3", "", now,
		)

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		orderID := kernel.NewUUID()
		_, err := payment.NewGatewayPayment(
			kernel.NewUUID(), &orderID, kernel.NewUUID(),
			payment.Type("REFUND"), amount(t, 100), "A4", "", now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCaptureGateway(t *testing.T) {
	paidAt := now.Add(5 * time.Minute)

	t.Run("should settle SUCCESS with the gateway reference", func(t *testing.T) {
		p := newGateway(t)

		captured, err := p.CaptureGateway(true, "REF-777", paidAt)

		require.NoError(t, err)
		assert.True(t, captured)
		assert.Equal(t, payment.StatusSuccess, p.Status())
		assert.Equal(t, "REF-777", p.RefID())
		require.NotNil(t, p.PaidAt())
		assert.Equal(t, paidAt, *p.PaidAt())
	})

	t.Run("should settle FAILED on a declined verdict", func(t *testing.T) {
		p := newGateway(t)

		captured, err := p.CaptureGateway(false, "", paidAt)

		require.NoError(t, err)
		assert.True(t, captured)
		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("should treat a replayed callback as a no-op", func(t *testing.T) {
		p := newGateway(t)
		_, err := p.CaptureGateway(true, "REF-777", paidAt)
		require.NoError(t, err)

		captured, err := p.CaptureGateway(true, "REF-777", paidAt.Add(time.Minute))

		require.NoError(t, err)
		assert.False(t, captured)
		assert.Equal(t, payment.StatusSuccess, p.Status())
		assert.Equal(t, paidAt, *p.PaidAt())
	})

	t.Run("should require a reference on success", func(t *testing.T) {
		p := newGateway(t)

		captured, err := p.CaptureGateway(true, "", paidAt)

		require.Error(t, err)
		assert.False(t, captured)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, payment.StatusPending, p.Status())
	})

	t.Run("should reject capture on a card-to-card payment", func(t *testing.T) {
		p := newCardToCard(t)

		_, err := p.CaptureGateway(true, "REF-1", paidAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestCardToCardApprovalFlow(t *testing.T) {
	adminID := kernel.NewUUID()
	decidedAt := now.Add(time.Hour)

	t.Run("should queue for approval once the receipt is attached", func(t *testing.T) {
		p := newCardToCard(t)

		require.NoError(t, p.AttachReceipt("https://files/receipt-1.jpg"))

		assert.Equal(t, payment.StatusAwaitingApproval, p.Status())
		assert.Equal(t, "https://files/receipt-1.jpg", p.ReceiptURL())
	})

	t.Run("should reject a second receipt once queued for approval", func(t *testing.T) {
		p := newCardToCard(t)
		require.NoError(t, p.AttachReceipt("https://files/receipt-1.jpg"))

		err := p.AttachReceipt("https://files/receipt-2.jpg")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "https://files/receipt-1.jpg", p.ReceiptURL())
	})

	t.Run("should settle SUCCESS on approval", func(t *testing.T) {
		p := newCardToCard(t)
		require.NoError(t, p.AttachReceipt("https://files/receipt-1.jpg"))

		require.NoError(t, p.Approve(adminID, decidedAt))

		assert.Equal(t, payment.StatusSuccess, p.Status())
		require.NotNil(t, p.ApprovedBy())
		assert.True(t, p.ApprovedBy().IsEqual(adminID))
		require.NotNil(t, p.PaidAt())
	})

	t.Run("should settle FAILED on rejection", func(t *testing.T) {
		p := newCardToCard(t)
		require.NoError(t, p.AttachReceipt("https://files/receipt-1.jpg"))

		require.NoError(t, p.Reject(adminID, "receipt is unreadable"))

		assert.Equal(t, payment.StatusFailed, p.Status())
		assert.Equal(t, "receipt is unreadable", p.RejectionReason())
		assert.Nil(t, p.PaidAt())
	})

	t.Run("should reject approval without a receipt", func(t *testing.T) {
		p := newCardToCard(t)

		err := p.Approve(adminID, decidedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject a second decision", func(t *testing.T) {
		p := newCardToCard(t)
		require.NoError(t, p.AttachReceipt("https://files/receipt-1.jpg"))
		require.NoError(t, p.Approve(adminID, decidedAt))

		assert.ErrorIs(t, p.Reject(adminID, "too late"), errs.ErrInvalidState)
		assert.ErrorIs(t, p.AttachReceipt("https://files/receipt-2.jpg"), errs.ErrInvalidState)
	})

	t.Run("should reject receipt on a gateway payment", func(t *testing.T) {
		p := newGateway(t)

		err := p.AttachReceipt("https://files/receipt-1.jpg")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		paidAt := now.Add(time.Hour)

		p, err := payment.RestorePayment(
			id, &orderID, kernel.NewUUID(),
			payment.TypePrint, payment.MethodGateway, amount(t, 250000),
			payment.StatusSuccess, "A9", "REF-9", "", "print run",
			nil, "", now, &paidAt, 4,
		)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, payment.StatusSuccess, p.Status())
		assert.Equal(t, 4, p.Version())
		assert.True(t, p.IsTerminal())
	})

	t.Run("should reject non-positive version", func(t *testing.T) {
		orderID := kernel.NewUUID()
		_, err := payment.RestorePayment(
			kernel.NewUUID(), &orderID, kernel.NewUUID(),
			payment.TypePrint, payment.MethodGateway, amount(t, 250000),
			payment.StatusPending, "A9", "", "", "",
			nil, "", now, nil, 0,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestPaymentValidate(t *testing.T) {
	var p payment.Payment
	assert.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
}
