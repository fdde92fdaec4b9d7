package serviceimpl

import (
	"context"

	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
	"taskjar/pkg/scheduler"
)

// Shortly after midnight so yesterday's final state is captured.
const snapshotCron = "5 0 * * *"

// SnapshotJob materializes every user's daily completion row once per
// night. Reads recompute from tasks regardless; the snapshot keeps the
// daily_completions table warm for exports and event consumers.
type SnapshotJob struct {
	userRepo  repositories.UserRepository
	analytics services.AnalyticsService
	scheduler scheduler.EventScheduler
}

func NewSnapshotJob(
	userRepo repositories.UserRepository,
	analytics services.AnalyticsService,
	sched scheduler.EventScheduler,
) *SnapshotJob {
	return &SnapshotJob{
		userRepo:  userRepo,
		analytics: analytics,
		scheduler: sched,
	}
}

func (j *SnapshotJob) Register() error {
	return j.scheduler.AddJob("daily-snapshot", snapshotCron, func() {
		j.Run(context.Background())
	})
}

func (j *SnapshotJob) Run(ctx context.Context) {
	ids, err := j.userRepo.ListIDs(ctx)
	if err != nil {
		logger.Error("Snapshot job failed to list users", "error", err)
		return
	}

	failed := 0
	for _, id := range ids {
		if err := j.analytics.SnapshotToday(ctx, id); err != nil {
			logger.Warn("Snapshot failed for user", "user_id", id, "error", err)
			failed++
		}
	}

	logger.Info("Daily snapshot completed", "users", len(ids), "failed", failed)
}
