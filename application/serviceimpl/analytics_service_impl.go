package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskjar/domain/analytics"
	"taskjar/domain/dto"
	"taskjar/domain/models"
	"taskjar/domain/ports"
	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/infrastructure/redis"
	"taskjar/pkg/logger"
)

const (
	analyticsCacheTTL = 5 * time.Minute

	heatmapRows = 5
	heatmapCols = 7
)

// AnalyticsServiceImpl derives all insight surfaces from the task table.
// The daily_completions table is a materialized copy maintained by
// SnapshotToday for the nightly job and event consumers; reads always
// recompute from tasks so corrections to a task retroactively fix the
// series.
type AnalyticsServiceImpl struct {
	taskRepo   repositories.TaskRepository
	dailyRepo  repositories.DailyCompletionRepository
	cache      *redis.Client
	publisher  ports.EventPublisher
	windowDays int
	thresholds analytics.Thresholds
}

func NewAnalyticsService(
	taskRepo repositories.TaskRepository,
	dailyRepo repositories.DailyCompletionRepository,
	cache *redis.Client,
	publisher ports.EventPublisher,
	windowDays int,
) services.AnalyticsService {
	return &AnalyticsServiceImpl{
		taskRepo:   taskRepo,
		dailyRepo:  dailyRepo,
		cache:      cache,
		publisher:  publisher,
		windowDays: windowDays,
		thresholds: analytics.DefaultThresholds(),
	}
}

func (s *AnalyticsServiceImpl) DailySeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]analytics.Day, error) {
	if windowDays <= 0 {
		windowDays = s.windowDays
	}
	return s.series(ctx, userID, windowDays, time.Now())
}

func (s *AnalyticsServiceImpl) series(ctx context.Context, userID uuid.UUID, windowDays int, today time.Time) ([]analytics.Day, error) {
	days := analytics.LastNDaysISO(today, windowDays)
	tasks, err := s.taskRepo.ListForWindow(ctx, userID, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}
	return analytics.DailyCompletionSeries(tasks, today, windowDays), nil
}

func (s *AnalyticsServiceImpl) Overview(ctx context.Context, userID uuid.UUID) (*dto.OverviewResponse, error) {
	key := s.cacheKey(userID, "overview")

	var cached dto.OverviewResponse
	if s.cache != nil {
		err := s.cache.GetOrSet(ctx, key, &cached, analyticsCacheTTL, func() (interface{}, error) {
			out, err := s.computeOverview(ctx, userID)
			if err != nil {
				return nil, err
			}
			return out, nil
		})
		if err == nil {
			cached.Cached = true
			return &cached, nil
		}
		logger.WarnContext(ctx, "Overview cache unavailable, computing directly", "user_id", userID, "error", err)
	}

	return s.computeOverview(ctx, userID)
}

func (s *AnalyticsServiceImpl) computeOverview(ctx context.Context, userID uuid.UUID) (*dto.OverviewResponse, error) {
	series, err := s.series(ctx, userID, s.windowDays, time.Now())
	if err != nil {
		return nil, err
	}

	last7 := analytics.Last7(series)
	avg7 := analytics.AveragePct(last7)
	return &dto.OverviewResponse{
		TodayPct:  series[len(series)-1].CompletionPct,
		Streak:    analytics.Streak(series),
		Average7d: avg7,
		// The projection mirrors the trailing week: no seasonality model,
		// just "more of the same".
		Forecast7d: avg7,
	}, nil
}

func (s *AnalyticsServiceImpl) Heatmap(ctx context.Context, userID uuid.UUID) (*dto.HeatmapResponse, error) {
	series, err := s.series(ctx, userID, heatmapRows*heatmapCols, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.HeatmapResponse{
		Rows: heatmapRows,
		Cols: heatmapCols,
		Grid: analytics.HeatmapGrid(series, heatmapRows, heatmapCols),
	}, nil
}

func (s *AnalyticsServiceImpl) Breakdown(ctx context.Context, userID uuid.UUID) (*dto.BreakdownResponse, error) {
	today := time.Now()
	days := analytics.LastNDaysISO(today, s.windowDays)
	tasks, err := s.taskRepo.ListForWindow(ctx, userID, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}

	b := analytics.BreakdownCompleted(tasks, time.Local)
	total := 0
	byPriority := make(map[string]int, len(b.Priority))
	for p, n := range b.Priority {
		byPriority[string(p)] = n
		total += n
	}
	byDifficulty := make(map[string]int, len(b.Difficulty))
	for d, n := range b.Difficulty {
		byDifficulty[string(d)] = n
	}
	return &dto.BreakdownResponse{
		ByPriority:   byPriority,
		ByDifficulty: byDifficulty,
		ByHour:       b.Hours,
		TotalTasks:   total,
	}, nil
}

func (s *AnalyticsServiceImpl) Insights(ctx context.Context, userID uuid.UUID) (*dto.InsightsResponse, error) {
	series, err := s.series(ctx, userID, s.windowDays, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.InsightsResponse{
		Insights: analytics.Insights(series, s.thresholds),
	}, nil
}

func (s *AnalyticsServiceImpl) SnapshotToday(ctx context.Context, userID uuid.UUID) error {
	today := time.Now()
	series, err := s.series(ctx, userID, 1, today)
	if err != nil {
		return err
	}
	day := series[len(series)-1]

	record := &models.DailyCompletion{
		UserID:        userID,
		DateISO:       day.DateISO,
		CompletionPct: day.CompletionPct,
		UpdatedAt:     today,
	}
	if err := s.dailyRepo.Upsert(ctx, record); err != nil {
		return err
	}

	s.invalidate(ctx, userID)

	if s.publisher != nil {
		s.publisher.PublishDailyUpdated(ctx, &ports.DailyUpdatedEvent{
			UserID:        userID.String(),
			DateISO:       day.DateISO,
			CompletionPct: day.CompletionPct,
		})
	}
	return nil
}

func (s *AnalyticsServiceImpl) SnapshotSeries(ctx context.Context, userID uuid.UUID, windowDays int) ([]analytics.Day, error) {
	if windowDays <= 0 {
		windowDays = s.windowDays
	}
	today := time.Now()
	days := analytics.LastNDaysISO(today, windowDays)

	records, err := s.dailyRepo.ListRange(ctx, userID, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}

	rows := make([]analytics.Day, 0, len(records))
	for _, rec := range records {
		rows = append(rows, analytics.Day{DateISO: rec.DateISO, CompletionPct: rec.CompletionPct})
	}
	return analytics.Normalize(rows, today, windowDays), nil
}

func (s *AnalyticsServiceImpl) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.DeletePattern(ctx, fmt.Sprintf("analytics:%s:*", userID)); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate analytics cache", "user_id", userID, "error", err)
	}
}

func (s *AnalyticsServiceImpl) cacheKey(userID uuid.UUID, surface string) string {
	return fmt.Sprintf("analytics:%s:%s", userID, surface)
}
