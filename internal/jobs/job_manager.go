// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3. Jobs are managed through JobManager, which
// starts and stops them as a unit.
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"agrimarket/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sessionReaperJob *PickupSessionReaperJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	sessionStore ports.SessionStore,
	sessionIdleTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionReaperJob: NewPickupSessionReaperJob(sessionStore, sessionIdleTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionReaperJob.Start(); err != nil {
		return fmt.Errorf("failed to start pickup session reaper: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionReaperJob.Stop()
}
