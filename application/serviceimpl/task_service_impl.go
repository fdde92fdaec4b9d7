package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/ledger"
	"taskjar/domain/models"
	"taskjar/domain/ports"
	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
)

// ErrTaskLocked is returned when an update tries to un-complete a task
// whose XP has already been counted into a jar.
var ErrTaskLocked = errors.New("completed task cannot be reopened")

type TaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	jarRepo     repositories.JarRepository
	settingRepo repositories.SettingRepository
	analytics   services.AnalyticsService
	publisher   ports.EventPublisher
	locks       *UserLocks
	defaults    SettingsDefaults
}

// SettingsDefaults seeds users who have never saved settings.
type SettingsDefaults struct {
	XPLight       int
	XPStandard    int
	XPChallenging int
	JarTarget     int
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	jarRepo repositories.JarRepository,
	settingRepo repositories.SettingRepository,
	analytics services.AnalyticsService,
	publisher ports.EventPublisher,
	locks *UserLocks,
	defaults SettingsDefaults,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		jarRepo:     jarRepo,
		settingRepo: settingRepo,
		analytics:   analytics,
		publisher:   publisher,
		locks:       locks,
		defaults:    defaults,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := dto.CreateTaskRequestToTask(req)
	s.materialize(ctx, userID, task)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID, "xp", task.XPValue)
	return task, nil
}

func (s *TaskServiceImpl) BulkCreateTasks(ctx context.Context, userID uuid.UUID, req *dto.BulkCreateTasksRequest) ([]*models.Task, error) {
	tasks := make([]*models.Task, 0, len(req.Tasks))
	for i := range req.Tasks {
		task := dto.CreateTaskRequestToTask(&req.Tasks[i])
		s.materialize(ctx, userID, task)
		tasks = append(tasks, task)
	}

	if err := s.taskRepo.CreateBatch(ctx, tasks); err != nil {
		logger.ErrorContext(ctx, "Failed to create task batch", "user_id", userID, "count", len(tasks), "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task batch created", "user_id", userID, "count", len(tasks))
	return tasks, nil
}

// materialize fills in identity, vocabulary defaults and the XP value
// resolved from the user's settings. XP is fixed at creation time; later
// settings changes never reprice existing tasks.
func (s *TaskServiceImpl) materialize(ctx context.Context, userID uuid.UUID, task *models.Task) {
	task.ID = uuid.New()
	task.UserID = userID
	if task.Priority == "" {
		task.Priority = models.PriorityScheduled
	}
	if task.Difficulty == "" {
		task.Difficulty = models.DifficultyStandard
	}
	task.XPValue = s.settings(ctx, userID).XPForDifficulty(task.Difficulty)
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
}

func (s *TaskServiceImpl) settings(ctx context.Context, userID uuid.UUID) *models.UserSetting {
	setting, err := s.settingRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.WarnContext(ctx, "Failed to load settings, using defaults", "user_id", userID, "error", err)
	}
	if setting == nil {
		setting = &models.UserSetting{
			UserID:        userID,
			XPLight:       s.defaults.XPLight,
			XPStandard:    s.defaults.XPStandard,
			XPChallenging: s.defaults.XPChallenging,
			JarTarget:     s.defaults.JarTarget,
		}
	}
	return setting
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, errors.New("task not found")
	}
	if task.UserID != userID {
		return nil, errors.New("task not found")
	}
	return task, nil
}

func (s *TaskServiceImpl) GetUserTasks(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, int64, error) {
	tasks, err := s.taskRepo.GetByUserID(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.taskRepo.CountByUserID(ctx, userID, filter)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	// XP already counted into a jar stays counted.
	if task.Completed {
		return nil, ErrTaskLocked
	}

	if req.Name != "" {
		task.Name = req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != "" {
		task.Priority = models.Priority(req.Priority)
	}
	if req.Difficulty != "" && models.Difficulty(req.Difficulty) != task.Difficulty {
		task.Difficulty = models.Difficulty(req.Difficulty)
		task.XPValue = s.settings(ctx, userID).XPForDifficulty(task.Difficulty)
	}
	if req.ScheduledFor != nil {
		if *req.ScheduledFor == "" {
			task.ScheduledFor = nil
		} else {
			task.ScheduledFor = req.ScheduledFor
		}
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if task.Completed {
		return ErrTaskLocked
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

func (s *TaskServiceImpl) CompleteTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.CompleteTaskResponse, error) {
	unlock := s.locks.Lock(userID.String())
	defer unlock()

	task, err := s.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return nil, ledger.ErrTaskAlreadyCompleted
	}

	setting := s.settings(ctx, userID)
	cfg := ledger.Config{TargetXP: setting.JarTarget}
	now := time.Now()

	active, err := s.jarRepo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		active = ledger.NewJar(userID, cfg, now)
	}

	credited := active
	res, err := ledger.Apply(active, task, now, cfg)
	if err != nil {
		return nil, err
	}

	var created *models.Jar
	if n := len(res.Created); n > 0 {
		created = res.Created[n-1]
	}
	if err := s.jarRepo.SaveCompletion(ctx, task, credited, res.Sealed, created); err != nil {
		logger.ErrorContext(ctx, "Failed to persist completion", "task_id", taskID, "error", err)
		return nil, err
	}

	s.publishCompletion(ctx, task, res)

	if err := s.analytics.SnapshotToday(ctx, userID); err != nil {
		logger.WarnContext(ctx, "Failed to snapshot daily completion", "user_id", userID, "error", err)
	}

	logger.InfoContext(ctx, "Task completed",
		"task_id", taskID,
		"user_id", userID,
		"xp", task.XPValue,
		"sealed_jars", len(res.Sealed),
	)

	resp := &dto.CompleteTaskResponse{
		Task:      *dto.TaskToTaskResponse(task),
		ActiveJar: *dto.JarToJarResponse(res.Active),
	}
	for _, jar := range res.Sealed {
		resp.SealedJars = append(resp.SealedJars, *dto.JarToJarResponse(jar))
	}
	return resp, nil
}

func (s *TaskServiceImpl) publishCompletion(ctx context.Context, task *models.Task, res *ledger.Result) {
	if s.publisher == nil {
		return
	}

	s.publisher.PublishTaskCompleted(ctx, &ports.TaskCompletedEvent{
		UserID:    task.UserID.String(),
		TaskID:    task.ID.String(),
		TaskName:  task.Name,
		XPValue:   task.XPValue,
		JarID:     res.Active.ID.String(),
		CurrentXP: res.Active.CurrentXP,
		TargetXP:  res.Active.TargetXP,
	})

	for _, jar := range res.Sealed {
		s.publisher.PublishJarSealed(ctx, &ports.JarSealedEvent{
			UserID:   jar.UserID.String(),
			JarID:    jar.ID.String(),
			TargetXP: jar.TargetXP,
			Tasks:    len(jar.TaskIDs),
		})
	}
}
