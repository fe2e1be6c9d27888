package commands_test

import (
	"testing"

	"printworks/internal/core/application/usecases/commands"
	"printworks/internal/core/domain/model/kernel"
	"printworks/internal/core/domain/model/order"
	"printworks/internal/core/domain/model/report"
	"printworks/internal/core/ports"
	"printworks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func awaitingValidationOrder(t *testing.T) *order.Order {
	t.Helper()
	printPrice, err := kernel.NewMoney(200000)
	require.NoError(t, err)
	validationFee, err := kernel.NewMoney(50000)
	require.NoError(t, err)
	zero := 0
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.PlanOwnDesign, 50, "https://files/art.pdf", true, "", "",
		order.Pricing{
			Design: kernel.ZeroMoney(), Validation: validationFee,
			Print: printPrice, Total: printPrice.Add(validationFee), MaxRevisions: &zero,
		},
	)
	require.NoError(t, err)
	require.Equal(t, order.StatusAwaitingValidation, o.Status())
	return o
}

func TestSubmitValidationReportCommandHandler_Handle_Failed(t *testing.T) {
	ctx := t.Context()
	o := awaitingValidationOrder(t)
	validatorID := kernel.NewUUID()
	fixCost, err := kernel.NewMoney(120000)
	require.NoError(t, err)
	totalBefore := o.TotalPrice().Amount()

	issues := []report.Issue{{
		Kind:        "RESOLUTION",
		Severity:    report.SeverityMedium,
		Description: "artwork is 72dpi",
		Suggestion:  "re-export at 300dpi",
	}}
	cmd, err := commands.NewSubmitValidationReportCommand(
		kernel.NewUUID(), o.ID(), validatorID,
		report.OutcomeFailed, issues, fixCost, "needs a re-export")
	require.NoError(t, err)

	users := new(MockUserDirectory)
	users.On("GetUser", ctx, validatorID).
		Return(ports.User{ID: validatorID, Role: ports.RoleValidator}, nil).Once()

	orderRepo := new(MockOrderRepository)
	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("ValidationReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", mock.Anything, mock.AnythingOfType("*report.ValidationReport")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockValidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := &recordingNotifier{}
	h := commands.NewSubmitValidationReportCommandHandler(factory, users, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.StatusNeedsAction, o.Status())
	assert.Equal(t, order.ValidationFailed, o.ValidationStatus())
	assert.Equal(t, int64(120000), o.FixPrice().Amount())
	assert.Equal(t, totalBefore+120000, o.TotalPrice().Amount())

	filed := reportRepo.Calls[0].Arguments.Get(1).(*report.ValidationReport)
	assert.False(t, filed.Passed())
	assert.Len(t, filed.Issues(), 1)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, ports.EventValidationReportFiled, notifier.events[0].Event)

	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	reportRepo.AssertExpectations(t)
}

func TestSubmitValidationReportCommandHandler_Handle_Passed(t *testing.T) {
	ctx := t.Context()
	o := awaitingValidationOrder(t)
	validatorID := kernel.NewUUID()
	cmd, err := commands.NewSubmitValidationReportCommand(
		kernel.NewUUID(), o.ID(), validatorID,
		report.OutcomePassed, nil, kernel.ZeroMoney(), "")
	require.NoError(t, err)

	users := new(MockUserDirectory)
	users.On("GetUser", ctx, validatorID).
		Return(ports.User{ID: validatorID, Role: ports.RoleValidator}, nil).Once()

	orderRepo := new(MockOrderRepository)
	reportRepo := new(MockReportRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("ValidationReportRepository").Return(reportRepo).Once(),
		reportRepo.On("Add", mock.Anything, mock.AnythingOfType("*report.ValidationReport")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockValidationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitValidationReportCommandHandler(factory, users, &recordingNotifier{})
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.StatusReadyForPrint, o.Status())
	assert.Equal(t, order.ValidationPassed, o.ValidationStatus())
	require.NotNil(t, o.AssignedValidator())
	assert.True(t, o.AssignedValidator().IsEqual(validatorID))
}

func TestSubmitValidationReportCommandHandler_Handle_WrongRole(t *testing.T) {
	// Filing a report is the validator's job alone; even an admin may not.
	for _, role := range []ports.Role{ports.RoleDesigner, ports.RoleAdmin, ports.RoleCustomer} {
		t.Run(string(role), func(t *testing.T) {
			ctx := t.Context()
			o := awaitingValidationOrder(t)
			actorID := kernel.NewUUID()
			cmd, err := commands.NewSubmitValidationReportCommand(
				kernel.NewUUID(), o.ID(), actorID,
				report.OutcomePassed, nil, kernel.ZeroMoney(), "")
			require.NoError(t, err)

			users := new(MockUserDirectory)
			users.On("GetUser", ctx, actorID).
				Return(ports.User{ID: actorID, Role: role}, nil).Once()

			factory := new(MockValidationUoWFactory)
			h := commands.NewSubmitValidationReportCommandHandler(factory, users, &recordingNotifier{})
			err = h.Handle(ctx, cmd)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrForbidden)
			factory.AssertNotCalled(t, "Create")
			assert.Equal(t, order.StatusAwaitingValidation, o.Status())
		})
	}
}
