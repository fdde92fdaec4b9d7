package services

import (
	"context"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
)

type SettingService interface {
	// GetSettings returns the user's settings, materializing defaults on
	// first access.
	GetSettings(ctx context.Context, userID uuid.UUID) (*models.UserSetting, error)
	// UpdateSettings persists the patch; a changed jar target is applied
	// to the active jar immediately.
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*models.UserSetting, error)
	SetParentLock(ctx context.Context, userID uuid.UUID, req *dto.SetParentLockRequest) error
	DisableParentLock(ctx context.Context, userID uuid.UUID, secret string) error
	// ClearData wipes the user's tasks, jars and history. Requires the
	// parent-lock secret when the lock is enabled.
	ClearData(ctx context.Context, userID uuid.UUID, req *dto.ClearDataRequest) error
}
