// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3.
//
// The only job today is ApprovalReminderJob: card-to-card receipts wait on a
// human admin, and without a nudge they can sit in AWAITING_APPROVAL for
// days. The job periodically lists the backlog and re-publishes a reminder
// notification for each waiting payment.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reminderJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
