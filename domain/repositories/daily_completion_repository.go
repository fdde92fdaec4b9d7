package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

type DailyCompletionRepository interface {
	// Upsert writes the day's completion percentage, replacing any
	// earlier snapshot for the same user and date.
	Upsert(ctx context.Context, record *models.DailyCompletion) error
	ListRange(ctx context.Context, userID uuid.UUID, fromISO, toISO string) ([]*models.DailyCompletion, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
