package jobs

import (
	"context"
	"log/slog"

	"printworks/internal/core/application/usecases/queries"
	"printworks/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// approvalReminderSchedule fires at the top of every hour.
const approvalReminderSchedule = "0 0 * * * *"

// ApprovalReminderJob re-publishes a notification for every card-to-card
// payment still waiting on an admin decision, so the approval backlog does
// not silently age.
type ApprovalReminderJob struct {
	handler  queries.GetAwaitingApprovalPaymentsQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewApprovalReminderJob creates the reminder job.
func NewApprovalReminderJob(
	handler queries.GetAwaitingApprovalPaymentsQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *ApprovalReminderJob {
	return &ApprovalReminderJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "approval_reminder_job"),
	}
}

// Start schedules the job to run hourly.
func (j *ApprovalReminderJob) Start() error {
	_, err := j.cron.AddFunc(approvalReminderSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "approval reminder job started (running hourly)")
	return nil
}

// Stop stops the job.
func (j *ApprovalReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "approval reminder job stopped")
}

func (j *ApprovalReminderJob) run() {
	ctx := context.Background()

	waiting, err := j.handler.Handle(ctx, queries.NewGetAwaitingApprovalPaymentsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "approval reminder job failed", "error", err)
		return
	}
	if len(waiting) == 0 {
		return
	}

	j.logger.InfoContext(ctx, "payments awaiting approval", "count", len(waiting))

	for _, p := range waiting {
		orderID := ""
		if p.OrderID != nil {
			orderID = *p.OrderID
		}
		j.notifier.Publish(ctx, ports.Notification{
			Event:      ports.EventPaymentAwaitsApproval,
			OrderID:    orderID,
			PaymentID:  p.ID,
			CustomerID: p.CustomerID,
			Detail:     "reminder: receipt still awaiting approval",
		})
	}
}
