package commands_test

import (
	"context"

	"printworks/internal/core/application/usecases/commands"
	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/domain/model/payment"
	"printworks/internal/core/domain/model/report"
	"printworks/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetByAuthority(ctx context.Context, authority string) (*payment.Payment, error) {
	args := m.Called(ctx, authority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) GetOpenByOrderAndType(ctx context.Context, orderID kernel.UUID, t payment.Type) (*payment.Payment, error) {
	args := m.Called(ctx, orderID, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}
func (m *MockPaymentRepository) HasSucceededForOrder(ctx context.Context, orderID kernel.UUID, t payment.Type) (bool, error) {
	args := m.Called(ctx, orderID, t)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentRepository) GetAllInAwaitingApprovalStatus(ctx context.Context) ([]*payment.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) Add(ctx context.Context, r *report.ValidationReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReportRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*report.ValidationReport, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*report.ValidationReport), args.Error(1)
}

// MockUoW satisfies every typed unit-of-work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}
func (m *MockUoW) ValidationReportRepository() ports.ValidationReportRepository {
	args := m.Called()
	return args.Get(0).(ports.ValidationReportRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderPaymentUoWFactory struct{ mock.Mock }

func (m *MockOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderPaymentUoW)
}

type MockValidationUoWFactory struct{ mock.Mock }

func (m *MockValidationUoWFactory) Create() commands.ValidationUoW {
	args := m.Called()
	return args.Get(0).(commands.ValidationUoW)
}

type MockUserDirectory struct{ mock.Mock }

func (m *MockUserDirectory) GetUser(ctx context.Context, id kernel.UUID) (ports.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.User), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetProduct(ctx context.Context, id kernel.UUID) (ports.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Product), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePayment(ctx context.Context, amount kernel.Money, description string) (string, string, error) {
	args := m.Called(ctx, amount, description)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockPaymentGateway) VerifyPayment(ctx context.Context, authority string, amount kernel.Money) (bool, string, error) {
	args := m.Called(ctx, authority, amount)
	return args.Bool(0), args.String(1), args.Error(2)
}

// recordingNotifier captures published events without a mock: notifications
// are fire-and-forget, so tests only ever inspect what went out.
type recordingNotifier struct {
	events []ports.Notification
}

func (n *recordingNotifier) Publish(_ context.Context, notification ports.Notification) {
	n.events = append(n.events, notification)
}
