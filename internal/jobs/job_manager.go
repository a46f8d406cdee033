package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
}

func NewJobManager(backlogHandler backlogQueryHandler, backlogSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderBacklogJob: NewOrderBacklogJob(backlogHandler, backlogSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
}
