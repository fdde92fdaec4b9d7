package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskjar/domain/models"
	"taskjar/domain/services"
)

type analyticsFixture struct {
	taskRepo  *fakeTaskRepo
	dailyRepo *fakeDailyRepo
	svc       services.AnalyticsService
}

func newAnalyticsFixture() *analyticsFixture {
	f := &analyticsFixture{
		taskRepo:  newFakeTaskRepo(),
		dailyRepo: newFakeDailyRepo(),
	}
	f.svc = NewAnalyticsService(f.taskRepo, f.dailyRepo, nil, &fakePublisher{}, 30)
	return f
}

func completedTask(userID uuid.UUID, priority models.Priority, difficulty models.Difficulty, at time.Time) *models.Task {
	return &models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        "done",
		Priority:    priority,
		Difficulty:  difficulty,
		XPValue:     10,
		Completed:   true,
		CompletedAt: &at,
		CreatedAt:   at,
	}
}

func TestBreakdownBucketsByVocabulary(t *testing.T) {
	f := newAnalyticsFixture()
	userID := uuid.New()
	ctx := context.Background()
	now := time.Now()

	for _, task := range []*models.Task{
		completedTask(userID, models.PriorityUrgent, models.DifficultyChallenging, now),
		completedTask(userID, models.PriorityUrgent, models.DifficultyLight, now),
		completedTask(userID, models.PriorityOptional, models.DifficultyStandard, now),
	} {
		f.taskRepo.tasks[task.ID] = task
	}
	// Pending tasks contribute nothing.
	pending := &models.Task{ID: uuid.New(), UserID: userID, Name: "later", Priority: models.PriorityUrgent, Difficulty: models.DifficultyStandard, CreatedAt: now}
	f.taskRepo.tasks[pending.ID] = pending

	b, err := f.svc.Breakdown(ctx, userID)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	if b.TotalTasks != 3 {
		t.Errorf("TotalTasks = %d, want 3", b.TotalTasks)
	}
	if b.ByPriority["urgent"] != 2 || b.ByPriority["optional"] != 1 {
		t.Errorf("ByPriority = %v, want urgent:2 optional:1", b.ByPriority)
	}
	if b.ByDifficulty["challenging"] != 1 || b.ByDifficulty["light"] != 1 || b.ByDifficulty["standard"] != 1 {
		t.Errorf("ByDifficulty = %v, want one of each", b.ByDifficulty)
	}
	hourTotal := 0
	for _, n := range b.ByHour {
		hourTotal += n
	}
	if hourTotal != 3 {
		t.Errorf("hour histogram total = %d, want 3", hourTotal)
	}
}

func TestSnapshotSeriesServesStoredRows(t *testing.T) {
	f := newAnalyticsFixture()
	userID := uuid.New()
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	f.dailyRepo.rows[userID.String()+"|"+today] = &models.DailyCompletion{UserID: userID, DateISO: today, CompletionPct: 80}
	// Out-of-range values are clamped on read.
	f.dailyRepo.rows[userID.String()+"|"+yesterday] = &models.DailyCompletion{UserID: userID, DateISO: yesterday, CompletionPct: 140}

	series, err := f.svc.SnapshotSeries(ctx, userID, 7)
	if err != nil {
		t.Fatalf("SnapshotSeries: %v", err)
	}

	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}
	if series[6].DateISO != today || series[6].CompletionPct != 80 {
		t.Errorf("today = %+v, want %s/80", series[6], today)
	}
	if series[5].CompletionPct != 100 {
		t.Errorf("yesterday pct = %d, want clamped to 100", series[5].CompletionPct)
	}
	for i := 0; i < 5; i++ {
		if series[i].CompletionPct != 0 {
			t.Errorf("day %d pct = %d, want 0 for missing snapshot", i, series[i].CompletionPct)
		}
	}
}

func TestSnapshotSeriesRoundTripsSnapshotToday(t *testing.T) {
	f := newAnalyticsFixture()
	userID := uuid.New()
	ctx := context.Background()
	now := time.Now()

	f.taskRepo.tasks[uuid.New()] = completedTask(userID, models.PriorityScheduled, models.DifficultyStandard, now)

	if err := f.svc.SnapshotToday(ctx, userID); err != nil {
		t.Fatalf("SnapshotToday: %v", err)
	}

	series, err := f.svc.SnapshotSeries(ctx, userID, 1)
	if err != nil {
		t.Fatalf("SnapshotSeries: %v", err)
	}
	if len(series) != 1 || series[0].CompletionPct != 100 {
		t.Fatalf("series = %+v, want single 100%% entry", series)
	}
}
