// Package http exposes the order platform over REST. Handlers translate
// requests into commands and queries, and domain errors into status codes;
// no business rules live here.
//
// The acting user arrives in the X-User-ID header. Authentication itself is
// terminated upstream; this layer only needs the identity to hand to the
// use cases, which do their own role and ownership checks.
package http

import (
	"net/http"
	"strconv"

	"printworks/internal/core/application/usecases/commands"
	"printworks/internal/core/application/usecases/queries"
	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/domain/model/payment"
	"printworks/internal/core/domain/model/report"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	UpdateOrder            commands.UpdateOrderCommandHandler
	CancelOrder            commands.CancelOrderCommandHandler
	AssignStaff            commands.AssignStaffCommandHandler
	AcceptOrder            commands.AcceptOrderCommandHandler
	SetOrderStatus         commands.SetOrderStatusCommandHandler
	SetAdminNotes          commands.SetAdminNotesCommandHandler
	RequestRevision        commands.RequestRevisionCommandHandler
	RequestValidation      commands.RequestValidationCommandHandler
	SubmitValidationReport commands.SubmitValidationReportCommandHandler
	MarkOrderFixed         commands.MarkOrderFixedCommandHandler
	InitiatePayment        commands.InitiatePaymentCommandHandler
	HandlePaymentCallback  commands.HandlePaymentCallbackCommandHandler
	UploadReceipt          commands.UploadReceiptCommandHandler
	ApprovePayment         commands.ApprovePaymentCommandHandler
	RejectPayment          commands.RejectPaymentCommandHandler

	GetOrder                    queries.GetOrderQueryHandler
	GetCustomerOrders           queries.GetCustomerOrdersQueryHandler
	GetPrintshopQueue           queries.GetPrintshopQueueQueryHandler
	GetValidationReports        queries.GetValidationReportsQueryHandler
	GetOrderPayments            queries.GetOrderPaymentsQueryHandler
	GetAwaitingApprovalPayments queries.GetAwaitingApprovalPaymentsQueryHandler
}

// Server wires HTTP routes to use case handlers.
type Server struct {
	handlers Handlers
	users    ports.UserDirectory
}

// NewServer creates a server. The user directory backs the role checks the
// admin-only read endpoints need.
func NewServer(handlers Handlers, users ports.UserDirectory) *Server {
	return &Server{handlers: handlers, users: users}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.createOrder)
	api.GET("/orders", s.listMyOrders)
	api.GET("/orders/:id", s.getOrder)
	api.PATCH("/orders/:id", s.updateOrder)
	api.POST("/orders/:id/cancel", s.cancelOrder)
	api.POST("/orders/:id/assignments", s.assignStaff)
	api.POST("/orders/:id/accept", s.acceptOrder)
	api.POST("/orders/:id/status", s.setOrderStatus)
	api.PUT("/orders/:id/admin-notes", s.setAdminNotes)
	api.POST("/orders/:id/revisions", s.requestRevision)
	api.POST("/orders/:id/validation", s.requestValidation)
	api.POST("/orders/:id/validation-reports", s.submitValidationReport)
	api.GET("/orders/:id/validation-reports", s.listValidationReports)
	api.POST("/orders/:id/fixed", s.markOrderFixed)
	api.POST("/orders/:id/payments", s.initiatePayment)
	api.GET("/orders/:id/payments", s.listOrderPayments)

	api.GET("/payments/callback", s.paymentCallback)
	api.POST("/payments/:id/receipt", s.uploadReceipt)
	api.POST("/payments/:id/approve", s.approvePayment)
	api.POST("/payments/:id/reject", s.rejectPayment)
	api.GET("/payments/awaiting-approval", s.listAwaitingApprovalPayments)

	api.GET("/printshop/queue", s.printshopQueue)
}

func fail(ctx echo.Context, err error) error {
	code, body := errorBody(err)
	return ctx.JSON(code, body)
}

// actorID reads the acting user from the X-User-ID header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get("X-User-ID")
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "X-User-ID header is required")
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "X-User-ID header is not a UUID")
	}
	return id, nil
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, name+" is not a UUID")
	}
	return id, nil
}

func (s *Server) createOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id is not a UUID")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor, productID,
		order.DesignPlan(req.Plan), req.Quantity,
		req.DesignFileURL, req.ValidationRequested,
		req.ShippingAddress, req.CustomerNotes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

func (s *Server) listMyOrders(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	limit := intQueryParam(ctx, "limit")
	offset := intQueryParam(ctx, "offset")

	query, err := queries.NewGetCustomerOrdersQuery(actor, ctx.QueryParam("status"), limit, offset)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (s *Server) updateOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actor,
		req.DesignFileURL, req.ShippingAddress, req.CustomerNotes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) cancelOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) assignStaff(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req assignStaffRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	assigneeID, err := kernel.UUIDFromString(req.AssigneeID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "assignee_id is not a UUID")
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, actor, order.StaffRole(req.Role), assigneeID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AssignStaff.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) acceptOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actor)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) setOrderStatus(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req setOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, actor,
		order.Status(req.Status), req.TrackingCode)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SetOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) setAdminNotes(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req setAdminNotesRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSetAdminNotesCommand(orderID, actor, req.Notes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SetAdminNotes.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) requestRevision(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestRevisionCommand(orderID, actor)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RequestRevision.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) requestValidation(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestValidationCommand(orderID, actor)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RequestValidation.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) submitValidationReport(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req submitValidationReportRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fixCost, err := kernel.NewMoney(req.FixCost)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("fix_cost", err))
	}

	issues := make([]report.Issue, 0, len(req.Issues))
	for _, issue := range req.Issues {
		issues = append(issues, report.Issue{
			Kind:        issue.Kind,
			Severity:    report.Severity(issue.Severity),
			Description: issue.Description,
			Suggestion:  issue.Suggestion,
		})
	}

	reportID := kernel.NewUUID()
	cmd, err := commands.NewSubmitValidationReportCommand(
		reportID, orderID, actor,
		report.Outcome(req.Outcome), issues, fixCost, req.Notes)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.SubmitValidationReport.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": reportID.String()})
}

func (s *Server) listValidationReports(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetValidationReportsQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	reports, err := s.handlers.GetValidationReports.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reports)
}

func (s *Server) markOrderFixed(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req markOrderFixedRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewMarkOrderFixedCommand(orderID, actor, req.DesignFileURL)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.MarkOrderFixed.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) initiatePayment(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req initiatePaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewInitiatePaymentCommand(
		kernel.NewUUID(), orderID, actor,
		payment.Type(req.PaymentType), payment.Method(req.Method), req.Description)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.handlers.InitiatePayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"payment_id":   result.PaymentID,
		"authority":    result.Authority,
		"redirect_url": result.RedirectURL,
	})
}

func (s *Server) listOrderPayments(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderPaymentsQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	payments, err := s.handlers.GetOrderPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, payments)
}

// paymentCallback is the provider's return URL. The provider reports the
// customer-side verdict in the Status query parameter; the handler re-verifies
// an OK verdict server-side before settling anything.
func (s *Server) paymentCallback(ctx echo.Context) error {
	authority := ctx.QueryParam("Authority")
	verdict := ctx.QueryParam("Status")

	cmd, err := commands.NewHandlePaymentCallbackCommand(authority, verdict == "OK")
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.HandlePaymentCallback.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) uploadReceipt(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	paymentID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req uploadReceiptRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUploadReceiptCommand(paymentID, actor, req.ReceiptURL)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.UploadReceipt.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) approvePayment(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	paymentID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewApprovePaymentCommand(paymentID, actor)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.ApprovePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) rejectPayment(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}
	paymentID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	var req rejectPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRejectPaymentCommand(paymentID, actor, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.handlers.RejectPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) listAwaitingApprovalPayments(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	user, err := s.users.GetUser(ctx.Request().Context(), actor)
	if err != nil {
		return fail(ctx, err)
	}
	if user.Role != ports.RoleAdmin {
		return fail(ctx, errs.NewForbiddenError(actor.String(), "only an admin may list the approval backlog"))
	}

	payments, err := s.handlers.GetAwaitingApprovalPayments.Handle(
		ctx.Request().Context(), queries.NewGetAwaitingApprovalPaymentsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, payments)
}

func (s *Server) printshopQueue(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return err
	}

	user, err := s.users.GetUser(ctx.Request().Context(), actor)
	if err != nil {
		return fail(ctx, err)
	}
	if user.Role != ports.RolePrintshop && user.Role != ports.RoleAdmin {
		return fail(ctx, errs.NewForbiddenError(actor.String(), "only a print shop may list the print queue"))
	}

	limit := intQueryParam(ctx, "limit")
	offset := intQueryParam(ctx, "offset")

	query, err := queries.NewGetPrintshopQueueQuery(actor, limit, offset)
	if err != nil {
		return fail(ctx, err)
	}

	orders, err := s.handlers.GetPrintshopQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// intQueryParam parses a numeric query parameter, treating anything
// unparseable as absent. The queries clamp ranges themselves.
func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}
