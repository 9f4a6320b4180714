package jobs

import (
	"context"
	"log/slog"
	"time"

	"agrimarket/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PickupSessionReaperJob periodically discards pickup sessions that have
// been idle longer than the configured timeout. An abandoned session never
// blocks the order: reaping it simply forces the partner to start over.
type PickupSessionReaperJob struct {
	store       ports.SessionStore
	idleTimeout time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewPickupSessionReaperJob creates the reaper. Sessions untouched for
// longer than idleTimeout are purged on each run.
func NewPickupSessionReaperJob(
	store ports.SessionStore,
	idleTimeout time.Duration,
	logger *slog.Logger,
) *PickupSessionReaperJob {
	return &PickupSessionReaperJob{
		store:       store,
		idleTimeout: idleTimeout,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "pickup_session_reaper_job"),
	}
}

// Start begins the reaper job, running once a minute.
func (j *PickupSessionReaperJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().Add(-j.idleTimeout)

		purged, err := j.store.PurgeIdle(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pickup session reaping failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged idle pickup sessions", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup session reaper started (running every minute)")
	return nil
}

// Stop stops the reaper job.
func (j *PickupSessionReaperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup session reaper stopped")
}
