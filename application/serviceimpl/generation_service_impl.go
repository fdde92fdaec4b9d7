package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
	"taskjar/domain/ports"
	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
)

type GenerationServiceImpl struct {
	generator   ports.TaskGenerator
	weeklyRepo  repositories.WeeklyDumpRepository
	settingRepo repositories.SettingRepository
	defaults    SettingsDefaults
}

func NewGenerationService(
	generator ports.TaskGenerator,
	weeklyRepo repositories.WeeklyDumpRepository,
	settingRepo repositories.SettingRepository,
	defaults SettingsDefaults,
) services.GenerationService {
	return &GenerationServiceImpl{
		generator:   generator,
		weeklyRepo:  weeklyRepo,
		settingRepo: settingRepo,
		defaults:    defaults,
	}
}

func (s *GenerationServiceImpl) GenerateTasks(ctx context.Context, userID uuid.UUID, req *dto.GenerateTasksRequest) (*dto.GenerateTasksResponse, error) {
	raw, err := s.generator.Generate(ctx, req.Prompt)
	if err != nil {
		logger.WarnContext(ctx, "Generation failed, serving fallback", "user_id", userID, "error", err)
		return &dto.GenerateTasksResponse{
			Tasks:    s.remap(ctx, userID, fallbackTasks(req.Prompt)),
			Fallback: true,
		}, nil
	}

	return &dto.GenerateTasksResponse{Tasks: s.remap(ctx, userID, raw)}, nil
}

func (s *GenerationServiceImpl) GenerateWeekly(ctx context.Context, userID uuid.UUID, req *dto.GenerateWeeklyRequest) (*dto.GenerateTasksResponse, error) {
	weekStart, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		return nil, err
	}
	weekEnd := weekStart.AddDate(0, 0, 6).Format("2006-01-02")

	resp := &dto.GenerateTasksResponse{}
	raw, err := s.generator.GenerateWeekly(ctx, req.Prompt, req.WeekStart, weekEnd)
	if err != nil {
		logger.WarnContext(ctx, "Weekly generation failed, serving fallback", "user_id", userID, "error", err)
		raw = fallbackTasks(req.Prompt)
		for i := range raw {
			raw[i].ScheduledFor = weekStart.AddDate(0, 0, i%7).Format("2006-01-02")
		}
		resp.Fallback = true
	}
	resp.Tasks = s.remap(ctx, userID, raw)

	dump := &models.WeeklyDump{
		UserID:         userID,
		WeekStart:      req.WeekStart,
		WeekEnd:        weekEnd,
		Prompt:         req.Prompt,
		TasksGenerated: len(resp.Tasks),
		CreatedAt:      time.Now(),
	}
	if err := s.weeklyRepo.Create(ctx, dump); err != nil {
		logger.WarnContext(ctx, "Failed to record weekly dump", "user_id", userID, "error", err)
	}

	return resp, nil
}

func (s *GenerationServiceImpl) WeeklyHistory(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.WeeklyDump, error) {
	return s.weeklyRepo.ListByUserID(ctx, userID, offset, limit)
}

// remap converts the collaborator's external vocabulary into the
// internal one and prices each task from the user's settings. Unknown
// values land in the middle buckets.
func (s *GenerationServiceImpl) remap(ctx context.Context, userID uuid.UUID, raw []ports.GeneratedTask) []dto.GeneratedTask {
	setting, err := s.settingRepo.GetByUserID(ctx, userID)
	if err != nil || setting == nil {
		setting = &models.UserSetting{
			XPLight:       s.defaults.XPLight,
			XPStandard:    s.defaults.XPStandard,
			XPChallenging: s.defaults.XPChallenging,
		}
	}

	out := make([]dto.GeneratedTask, 0, len(raw))
	for _, t := range raw {
		difficulty := models.DifficultyFromExternal(t.Difficulty)
		out = append(out, dto.GeneratedTask{
			Name:         t.Name,
			Description:  t.Description,
			Priority:     string(models.PriorityFromExternal(t.Priority)),
			Difficulty:   string(difficulty),
			XPValue:      setting.XPForDifficulty(difficulty),
			ScheduledFor: t.ScheduledFor,
		})
	}
	return out
}

// fallbackTasks is the deterministic list returned when the
// collaborator is unreachable or keeps producing garbage. The user's
// prompt is echoed into the first task so the list still feels related
// to what they asked for.
func fallbackTasks(prompt string) []ports.GeneratedTask {
	// Truncate on a rune boundary so multi-byte prompts stay valid UTF-8.
	if runes := []rune(prompt); len(runes) > 60 {
		prompt = string(runes[:60])
	}
	return []ports.GeneratedTask{
		{Name: "Plan: " + prompt, Description: "Break this goal into three smaller steps", Priority: "high", Difficulty: "moderate"},
		{Name: "Work on the first step", Description: "Spend 25 focused minutes on the first step", Priority: "medium", Difficulty: "moderate"},
		{Name: "Review progress", Description: "Write down what got done and what's next", Priority: "low", Difficulty: "easy"},
	}
}
