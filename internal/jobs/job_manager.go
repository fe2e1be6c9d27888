package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	approvalReminderJob *ApprovalReminderJob
}

// NewJobManager creates a new job manager over the given jobs.
func NewJobManager(approvalReminderJob *ApprovalReminderJob) *JobManager {
	return &JobManager{
		approvalReminderJob: approvalReminderJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.approvalReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start approval reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.approvalReminderJob.Stop()
}
