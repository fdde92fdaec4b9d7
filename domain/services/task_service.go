package services

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
	"taskjar/domain/repositories"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	BulkCreateTasks(ctx context.Context, userID uuid.UUID, req *dto.BulkCreateTasksRequest) ([]*models.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	GetUserTasks(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, int64, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	// CompleteTask marks the task done, credits its XP to the active jar
	// and returns the full ledger outcome including any seals.
	CompleteTask(ctx context.Context, userID, taskID uuid.UUID) (*dto.CompleteTaskResponse, error)
}
