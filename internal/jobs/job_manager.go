package jobs

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenReportJob *KitchenReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(users ports.UserRepository, reportSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		kitchenReportJob: NewKitchenReportJob(users, reportSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kitchenReportJob.Stop()
}
