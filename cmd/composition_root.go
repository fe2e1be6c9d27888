package cmd

import (
	"log/slog"

	httpserver "printworks/internal/adapters/in/http"
	"printworks/internal/adapters/out/kafka"
	"printworks/internal/adapters/out/postgres"
	"printworks/internal/adapters/out/postgres/catalogrepo"
	"printworks/internal/adapters/out/postgres/userrepo"
	"printworks/internal/adapters/out/psp"
	"printworks/internal/core/application/usecases/commands"
	"printworks/internal/core/application/usecases/queries"
	"printworks/internal/core/domain/services"
	"printworks/internal/core/ports"
	"printworks/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Each handler gets
// the narrow unit-of-work factory shape it declares, adapted from the single
// GORM factory through the Func*UoWFactory types below.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	users      ports.UserDirectory
	catalog    ports.ProductCatalog
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	calculator services.PriceCalculator
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		users:      userrepo.NewGormUserDirectory(gormDB),
		catalog:    catalogrepo.NewGormProductCatalog(gormDB),
		gateway:    psp.NewSandboxGateway(config.GatewayRedirectBaseURL, logger),
		notifier:   kafka.NewNotifier([]string{config.KafkaHost}, config.KafkaNotificationTopic, logger),
		calculator: services.NewPriceCalculator(),
		logger:     logger,
	}
}

func (c *CompositionRoot) UserDirectory() ports.UserDirectory {
	return c.users
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderPaymentUoWFactory() commands.OrderPaymentUoWFactory {
	return FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) validationUoWFactory() commands.ValidationUoWFactory {
	return FuncValidationUoWFactory(func() commands.ValidationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.catalog, c.calculator, c.notifier)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.users, c.notifier)
}

func (c *CompositionRoot) CreateAssignStaffCommandHandler() commands.AssignStaffCommandHandler {
	return commands.NewAssignStaffCommandHandler(c.orderUoWFactory(), c.users)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.users, c.notifier)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.users, c.notifier)
}

func (c *CompositionRoot) CreateSetAdminNotesCommandHandler() commands.SetAdminNotesCommandHandler {
	return commands.NewSetAdminNotesCommandHandler(c.orderUoWFactory(), c.users)
}

func (c *CompositionRoot) CreateRequestRevisionCommandHandler() commands.RequestRevisionCommandHandler {
	return commands.NewRequestRevisionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRequestValidationCommandHandler() commands.RequestValidationCommandHandler {
	return commands.NewRequestValidationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitValidationReportCommandHandler() commands.SubmitValidationReportCommandHandler {
	return commands.NewSubmitValidationReportCommandHandler(
		c.validationUoWFactory(), c.users, c.notifier)
}

func (c *CompositionRoot) CreateMarkOrderFixedCommandHandler() commands.MarkOrderFixedCommandHandler {
	return commands.NewMarkOrderFixedCommandHandler(c.orderPaymentUoWFactory(), c.users, c.notifier)
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.orderPaymentUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateHandlePaymentCallbackCommandHandler() commands.HandlePaymentCallbackCommandHandler {
	return commands.NewHandlePaymentCallbackCommandHandler(
		c.orderPaymentUoWFactory(), c.gateway, c.notifier)
}

func (c *CompositionRoot) CreateUploadReceiptCommandHandler() commands.UploadReceiptCommandHandler {
	return commands.NewUploadReceiptCommandHandler(c.paymentUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateApprovePaymentCommandHandler() commands.ApprovePaymentCommandHandler {
	return commands.NewApprovePaymentCommandHandler(
		c.orderPaymentUoWFactory(), c.users, c.notifier)
}

func (c *CompositionRoot) CreateRejectPaymentCommandHandler() commands.RejectPaymentCommandHandler {
	return commands.NewRejectPaymentCommandHandler(c.paymentUoWFactory(), c.users, c.notifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.users)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPrintshopQueueQueryHandler() queries.GetPrintshopQueueQueryHandler {
	return queries.NewGetPrintshopQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetValidationReportsQueryHandler() queries.GetValidationReportsQueryHandler {
	return queries.NewGetValidationReportsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderPaymentsQueryHandler() queries.GetOrderPaymentsQueryHandler {
	return queries.NewGetOrderPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAwaitingApprovalPaymentsQueryHandler() queries.GetAwaitingApprovalPaymentsQueryHandler {
	return queries.NewGetAwaitingApprovalPaymentsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpserver.Handlers {
	return httpserver.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		UpdateOrder:            c.CreateUpdateOrderCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		AssignStaff:            c.CreateAssignStaffCommandHandler(),
		AcceptOrder:            c.CreateAcceptOrderCommandHandler(),
		SetOrderStatus:         c.CreateSetOrderStatusCommandHandler(),
		SetAdminNotes:          c.CreateSetAdminNotesCommandHandler(),
		RequestRevision:        c.CreateRequestRevisionCommandHandler(),
		RequestValidation:      c.CreateRequestValidationCommandHandler(),
		SubmitValidationReport: c.CreateSubmitValidationReportCommandHandler(),
		MarkOrderFixed:         c.CreateMarkOrderFixedCommandHandler(),
		InitiatePayment:        c.CreateInitiatePaymentCommandHandler(),
		HandlePaymentCallback:  c.CreateHandlePaymentCallbackCommandHandler(),
		UploadReceipt:          c.CreateUploadReceiptCommandHandler(),
		ApprovePayment:         c.CreateApprovePaymentCommandHandler(),
		RejectPayment:          c.CreateRejectPaymentCommandHandler(),

		GetOrder:                    c.CreateGetOrderQueryHandler(),
		GetCustomerOrders:           c.CreateGetCustomerOrdersQueryHandler(),
		GetPrintshopQueue:           c.CreateGetPrintshopQueueQueryHandler(),
		GetValidationReports:        c.CreateGetValidationReportsQueryHandler(),
		GetOrderPayments:            c.CreateGetOrderPaymentsQueryHandler(),
		GetAwaitingApprovalPayments: c.CreateGetAwaitingApprovalPaymentsQueryHandler(),
	}
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	reminder := jobs.NewApprovalReminderJob(
		c.CreateGetAwaitingApprovalPaymentsQueryHandler(), c.notifier, logger)
	return jobs.NewJobManager(reminder)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}

type FuncValidationUoWFactory func() commands.ValidationUoW

func (f FuncValidationUoWFactory) Create() commands.ValidationUoW {
	return f()
}
