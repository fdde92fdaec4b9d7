package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, user *models.User) error
	// ListIDs returns every user ID, used by the nightly snapshot job.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}
