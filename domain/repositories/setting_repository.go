package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/models"
)

type SettingRepository interface {
	// GetByUserID returns nil (no error) when the user has no settings
	// row yet; callers fall back to defaults.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserSetting, error)
	Upsert(ctx context.Context, setting *models.UserSetting) error
}
