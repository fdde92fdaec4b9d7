package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

type JarRepository interface {
	Create(ctx context.Context, jar *models.Jar) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Jar, error)
	// GetActive returns the single unsealed jar, or nil when the user
	// has none yet.
	GetActive(ctx context.Context, userID uuid.UUID) (*models.Jar, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Jar, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, id uuid.UUID, jar *models.Jar) error
	GetTaskIDs(ctx context.Context, jarID uuid.UUID) ([]uuid.UUID, error)
	// SaveCompletion persists a ledger application atomically: the
	// completed task, the jar it credited, any jars sealed along the
	// way and the freshly created active jar.
	SaveCompletion(ctx context.Context, task *models.Task, credited *models.Jar, sealed []*models.Jar, created *models.Jar) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
