package services

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
)

type GenerationService interface {
	// GenerateTasks turns a free-text goal into candidate tasks in the
	// internal vocabulary. On collaborator failure it returns the
	// deterministic fallback list with Fallback set.
	GenerateTasks(ctx context.Context, userID uuid.UUID, req *dto.GenerateTasksRequest) (*dto.GenerateTasksResponse, error)
	// GenerateWeekly plans a 7-day window and records the dump.
	GenerateWeekly(ctx context.Context, userID uuid.UUID, req *dto.GenerateWeeklyRequest) (*dto.GenerateTasksResponse, error)
	// WeeklyHistory lists the user's recorded planning sessions, newest
	// first.
	WeeklyHistory(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.WeeklyDump, error)
}
