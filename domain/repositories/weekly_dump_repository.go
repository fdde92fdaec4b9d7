package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

type WeeklyDumpRepository interface {
	Create(ctx context.Context, dump *models.WeeklyDump) error
	ListByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.WeeklyDump, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
