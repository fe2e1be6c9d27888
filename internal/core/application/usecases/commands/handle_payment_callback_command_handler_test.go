package commands_test

import (
	"testing"
	"time"

	"printworks/internal/core/application/usecases/commands"
	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/domain/model/payment"
	"printworks/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingGatewayPayment(t *testing.T, o *order.Order, authority string) *payment.Payment {
	t.Helper()
	orderID := o.ID()
	amount, err := kernel.NewMoney(250000)
	require.NoError(t, err)
	p, err := payment.NewGatewayPayment(
		kernel.NewUUID(), &orderID, o.CustomerID(),
		payment.TypePrint, amount, authority, "print run", time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func TestHandlePaymentCallbackCommandHandler_Handle_SuccessMovesOrder(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := pendingOrderFor(t, customerID)
	p := pendingGatewayPayment(t, o, "A777")
	cmd, _ := commands.NewHandlePaymentCallbackCommand("A777", true)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByAuthority", mock.Anything, "A777").Return(p, nil).Once(),
		paymentRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyPayment", ctx, "A777", p.Amount()).Return(true, "REF-1", nil).Once()

	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &recordingNotifier{}
	h := commands.NewHandlePaymentCallbackCommandHandler(factory, gateway, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusSuccess, p.Status())
	assert.Equal(t, "REF-1", p.RefID())
	assert.Equal(t, order.StatusReadyForPrint, o.Status())

	require.Len(t, notifier.events, 2)
	assert.Equal(t, ports.EventPaymentSettled, notifier.events[0].Event)
	assert.Equal(t, ports.EventOrderStatusChanged, notifier.events[1].Event)

	uow.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestHandlePaymentCallbackCommandHandler_Handle_FailedVerdict(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := pendingOrderFor(t, customerID)
	p := pendingGatewayPayment(t, o, "A778")
	cmd, _ := commands.NewHandlePaymentCallbackCommand("A778", false)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByAuthority", mock.Anything, "A778").Return(p, nil).Once(),
		paymentRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	gateway := new(MockPaymentGateway)
	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHandlePaymentCallbackCommandHandler(factory, gateway, &recordingNotifier{})
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, payment.StatusFailed, p.Status())
	assert.Equal(t, order.StatusPending, o.Status())
	// A failed claim is never re-verified with the provider.
	gateway.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePaymentCallbackCommandHandler_Handle_ReplayIsNoOp(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := pendingOrderFor(t, customerID)
	p := pendingGatewayPayment(t, o, "A779")
	_, err := p.CaptureGateway(true, "REF-9", time.Now().UTC())
	require.NoError(t, err)
	require.True(t, p.IsTerminal())

	cmd, _ := commands.NewHandlePaymentCallbackCommand("A779", true)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByAuthority", mock.Anything, "A779").Return(p, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	gateway := new(MockPaymentGateway)
	factory := new(MockOrderPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &recordingNotifier{}
	h := commands.NewHandlePaymentCallbackCommandHandler(factory, gateway, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	// The replayed callback touches nothing: no verify, no writes, no events.
	gateway.AssertNotCalled(t, "VerifyPayment", mock.Anything, mock.Anything, mock.Anything)
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Empty(t, notifier.events)
	assert.Equal(t, "REF-9", p.RefID())
}
