package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
	"taskjar/domain/ports"
)

func newGenerationService(gen ports.TaskGenerator, settingRepo *fakeSettingRepo, weeklyRepo *fakeWeeklyRepo) *GenerationServiceImpl {
	svc := NewGenerationService(gen, weeklyRepo, settingRepo, testDefaults)
	return svc.(*GenerationServiceImpl)
}

func TestGenerateTasksRemapsVocabulary(t *testing.T) {
	gen := &fakeGenerator{tasks: []ports.GeneratedTask{
		{Name: "Urgent thing", Priority: "high", Difficulty: "hard"},
		{Name: "Someday thing", Priority: "low", Difficulty: "easy"},
		{Name: "Odd thing", Priority: "critical", Difficulty: "banana"},
	}}
	svc := newGenerationService(gen, newFakeSettingRepo(), &fakeWeeklyRepo{})

	resp, err := svc.GenerateTasks(context.Background(), uuid.New(), &dto.GenerateTasksRequest{Prompt: "study"})
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if resp.Fallback {
		t.Error("fallback flag set on successful generation")
	}

	want := []struct {
		priority, difficulty string
		xp                   int
	}{
		{"urgent", "challenging", 15},
		{"optional", "light", 5},
		// Unknown external values land in the middle buckets.
		{"scheduled", "standard", 10},
	}
	for i, w := range want {
		got := resp.Tasks[i]
		if got.Priority != w.priority || got.Difficulty != w.difficulty || got.XPValue != w.xp {
			t.Errorf("task %d = %s/%s/%d, want %s/%s/%d",
				i, got.Priority, got.Difficulty, got.XPValue, w.priority, w.difficulty, w.xp)
		}
	}
}

func TestGenerateTasksFallbackOnFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc := newGenerationService(gen, newFakeSettingRepo(), &fakeWeeklyRepo{})

	resp, err := svc.GenerateTasks(context.Background(), uuid.New(), &dto.GenerateTasksRequest{Prompt: "clean my room"})
	if err != nil {
		t.Fatalf("GenerateTasks should not fail when fallback exists: %v", err)
	}
	if !resp.Fallback {
		t.Error("fallback flag not set")
	}
	if len(resp.Tasks) != 3 {
		t.Fatalf("fallback produced %d tasks, want 3", len(resp.Tasks))
	}
	if resp.Tasks[0].Name != "Plan: clean my room" {
		t.Errorf("first fallback task = %q, want prompt echoed", resp.Tasks[0].Name)
	}
}

func TestGenerateWeeklyRecordsDump(t *testing.T) {
	gen := &fakeGenerator{tasks: []ports.GeneratedTask{
		{Name: "Mon task", Priority: "medium", Difficulty: "moderate", ScheduledFor: "2026-03-02"},
		{Name: "Tue task", Priority: "medium", Difficulty: "moderate", ScheduledFor: "2026-03-03"},
	}}
	weeklyRepo := &fakeWeeklyRepo{}
	svc := newGenerationService(gen, newFakeSettingRepo(), weeklyRepo)
	userID := uuid.New()

	resp, err := svc.GenerateWeekly(context.Background(), userID, &dto.GenerateWeeklyRequest{
		Prompt:    "school week",
		WeekStart: "2026-03-02",
	})
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}
	if len(resp.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(resp.Tasks))
	}

	if len(weeklyRepo.dumps) != 1 {
		t.Fatalf("recorded %d dumps, want 1", len(weeklyRepo.dumps))
	}
	dump := weeklyRepo.dumps[0]
	if dump.WeekStart != "2026-03-02" || dump.WeekEnd != "2026-03-08" {
		t.Errorf("dump window %s..%s, want 2026-03-02..2026-03-08", dump.WeekStart, dump.WeekEnd)
	}
	if dump.TasksGenerated != 2 {
		t.Errorf("dump tasks = %d, want 2", dump.TasksGenerated)
	}
}

func TestGenerateWeeklyFallbackSpreadsDays(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	weeklyRepo := &fakeWeeklyRepo{}
	svc := newGenerationService(gen, newFakeSettingRepo(), weeklyRepo)

	resp, err := svc.GenerateWeekly(context.Background(), uuid.New(), &dto.GenerateWeeklyRequest{
		Prompt:    "exam prep",
		WeekStart: "2026-03-02",
	})
	if err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}
	if !resp.Fallback {
		t.Error("fallback flag not set")
	}
	for i, task := range resp.Tasks {
		if task.ScheduledFor == "" {
			t.Errorf("fallback task %d has no scheduled date", i)
		}
	}
}

func TestGenerateTasksPricesFromUserSettings(t *testing.T) {
	userID := uuid.New()
	settingRepo := newFakeSettingRepo()
	settingRepo.settings[userID] = &models.UserSetting{
		UserID: userID, XPLight: 1, XPStandard: 2, XPChallenging: 3, JarTarget: 100,
	}
	gen := &fakeGenerator{tasks: []ports.GeneratedTask{{Name: "t", Difficulty: "hard"}}}
	svc := newGenerationService(gen, settingRepo, &fakeWeeklyRepo{})

	resp, err := svc.GenerateTasks(context.Background(), userID, &dto.GenerateTasksRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if resp.Tasks[0].XPValue != 3 {
		t.Errorf("xp = %d, want 3 from user settings", resp.Tasks[0].XPValue)
	}
}

func TestWeeklyHistoryListsRecordedDumps(t *testing.T) {
	gen := &fakeGenerator{tasks: []ports.GeneratedTask{
		{Name: "Mon task", Priority: "medium", Difficulty: "moderate", ScheduledFor: "2026-03-02"},
	}}
	weeklyRepo := &fakeWeeklyRepo{}
	svc := newGenerationService(gen, newFakeSettingRepo(), weeklyRepo)
	userID := uuid.New()

	if _, err := svc.GenerateWeekly(context.Background(), userID, &dto.GenerateWeeklyRequest{
		Prompt:    "school week",
		WeekStart: "2026-03-02",
	}); err != nil {
		t.Fatalf("GenerateWeekly: %v", err)
	}

	dumps, err := svc.WeeklyHistory(context.Background(), userID, 0, 50)
	if err != nil {
		t.Fatalf("WeeklyHistory: %v", err)
	}
	if len(dumps) != 1 {
		t.Fatalf("got %d dumps, want 1", len(dumps))
	}
	if dumps[0].WeekStart != "2026-03-02" || dumps[0].WeekEnd != "2026-03-08" {
		t.Errorf("dump window %s..%s, want 2026-03-02..2026-03-08", dumps[0].WeekStart, dumps[0].WeekEnd)
	}
	if dumps[0].TasksGenerated != 1 {
		t.Errorf("dump tasks = %d, want 1", dumps[0].TasksGenerated)
	}

	other, err := svc.WeeklyHistory(context.Background(), uuid.New(), 0, 50)
	if err != nil {
		t.Fatalf("WeeklyHistory other user: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other user sees %d dumps, want 0", len(other))
	}
}

func TestGenerateTasksFallbackTruncatesPromptOnRuneBoundary(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	svc := newGenerationService(gen, newFakeSettingRepo(), &fakeWeeklyRepo{})

	prompt := strings.Repeat("ü", 80)
	resp, err := svc.GenerateTasks(context.Background(), uuid.New(), &dto.GenerateTasksRequest{Prompt: prompt})
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	name := resp.Tasks[0].Name
	if !utf8.ValidString(name) {
		t.Fatalf("fallback task name is not valid UTF-8: %q", name)
	}
	want := "Plan: " + strings.Repeat("ü", 60)
	if name != want {
		t.Errorf("fallback task name = %q, want prompt cut at 60 runes", name)
	}
}
