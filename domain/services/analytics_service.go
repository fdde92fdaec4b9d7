package services

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/analytics"
	"taskjar/domain/dto"
)

type AnalyticsService interface {
	// DailySeries returns one entry per day over the trailing window,
	// oldest first, with zero-percent entries for empty days.
	DailySeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]analytics.Day, error)
	Overview(ctx context.Context, userID uuid.UUID) (*dto.OverviewResponse, error)
	Heatmap(ctx context.Context, userID uuid.UUID) (*dto.HeatmapResponse, error)
	Breakdown(ctx context.Context, userID uuid.UUID) (*dto.BreakdownResponse, error)
	Insights(ctx context.Context, userID uuid.UUID) (*dto.InsightsResponse, error)
	// SnapshotToday recomputes and stores today's completion percentage.
	// Called after every completion and by the nightly job.
	SnapshotToday(ctx context.Context, userID uuid.UUID) error
	// SnapshotSeries serves the stored daily rows normalized into the
	// trailing window, one clamped entry per day. Live reads recompute
	// from tasks; this is the materialized-history surface.
	SnapshotSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]analytics.Day, error)
}
