package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

// TaskFilter narrows GetByUserID. Zero values mean "no filter".
type TaskFilter struct {
	Status string // "pending" or "completed"
	Date   string // YYYY-MM-DD, matches the task's attributed day
	Offset int
	Limit  int
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	CreateBatch(ctx context.Context, tasks []*models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, filter TaskFilter) ([]*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUserID(ctx context.Context, userID uuid.UUID, filter TaskFilter) (int64, error)
	// ListForWindow returns every task attributed to a day inside
	// [fromISO, toISO]: scheduled tasks by their scheduled date,
	// unscheduled ones by creation date.
	ListForWindow(ctx context.Context, userID uuid.UUID, fromISO, toISO string) ([]*models.Task, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
