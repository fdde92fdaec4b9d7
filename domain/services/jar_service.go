package services

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

type JarService interface {
	// GetActiveJar returns the user's open jar, creating the first one
	// on demand.
	GetActiveJar(ctx context.Context, userID uuid.UUID) (*models.Jar, error)
	ListJars(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Jar, int64, error)
	GetJar(ctx context.Context, userID, jarID uuid.UUID) (*models.Jar, error)
	// Retarget applies a new jar target to the active jar, sealing it
	// when its progress already meets the lowered target.
	Retarget(ctx context.Context, userID uuid.UUID, newTarget int) (*models.Jar, []*models.Jar, error)
}
