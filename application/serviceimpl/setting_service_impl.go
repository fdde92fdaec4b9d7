package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskjar/domain/dto"
	"taskjar/domain/models"
	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/infrastructure/redis"
	"taskjar/pkg/logger"
)

var (
	ErrParentLockRequired = errors.New("parent lock secret required")
	ErrParentLockInvalid  = errors.New("parent lock secret is incorrect")
)

type SettingServiceImpl struct {
	settingRepo repositories.SettingRepository
	taskRepo    repositories.TaskRepository
	jarRepo     repositories.JarRepository
	dailyRepo   repositories.DailyCompletionRepository
	weeklyRepo  repositories.WeeklyDumpRepository
	jarService  services.JarService
	cache       *redis.Client
	defaults    SettingsDefaults
}

func NewSettingService(
	settingRepo repositories.SettingRepository,
	taskRepo repositories.TaskRepository,
	jarRepo repositories.JarRepository,
	dailyRepo repositories.DailyCompletionRepository,
	weeklyRepo repositories.WeeklyDumpRepository,
	jarService services.JarService,
	cache *redis.Client,
	defaults SettingsDefaults,
) services.SettingService {
	return &SettingServiceImpl{
		settingRepo: settingRepo,
		taskRepo:    taskRepo,
		jarRepo:     jarRepo,
		dailyRepo:   dailyRepo,
		weeklyRepo:  weeklyRepo,
		jarService:  jarService,
		cache:       cache,
		defaults:    defaults,
	}
}

func (s *SettingServiceImpl) GetSettings(ctx context.Context, userID uuid.UUID) (*models.UserSetting, error) {
	setting, err := s.settingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &models.UserSetting{
			ID:            uuid.New(),
			UserID:        userID,
			StudentName:   "Student",
			XPLight:       s.defaults.XPLight,
			XPStandard:    s.defaults.XPStandard,
			XPChallenging: s.defaults.XPChallenging,
			JarTarget:     s.defaults.JarTarget,
			SoundEnabled:  true,
			Theme:         "dark",
			UpdatedAt:     time.Now(),
		}
		if err := s.settingRepo.Upsert(ctx, setting); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "Settings materialized with defaults", "user_id", userID)
	}
	return setting, nil
}

func (s *SettingServiceImpl) UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*models.UserSetting, error) {
	setting, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldTarget := setting.JarTarget

	if req.StudentName != nil {
		setting.StudentName = *req.StudentName
	}
	if req.XPLight != nil {
		setting.XPLight = *req.XPLight
	}
	if req.XPStandard != nil {
		setting.XPStandard = *req.XPStandard
	}
	if req.XPChallenging != nil {
		setting.XPChallenging = *req.XPChallenging
	}
	if req.JarTarget != nil {
		setting.JarTarget = *req.JarTarget
	}
	if req.SoundEnabled != nil {
		setting.SoundEnabled = *req.SoundEnabled
	}
	if req.Theme != nil {
		setting.Theme = *req.Theme
	}
	setting.UpdatedAt = time.Now()

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		logger.ErrorContext(ctx, "Failed to save settings", "user_id", userID, "error", err)
		return nil, err
	}

	// A changed target applies to the active jar right away; it may seal
	// on the spot when progress already meets a lowered target.
	if setting.JarTarget != oldTarget {
		if _, sealed, err := s.jarService.Retarget(ctx, userID, setting.JarTarget); err != nil {
			logger.ErrorContext(ctx, "Failed to retarget active jar", "user_id", userID, "error", err)
			return nil, err
		} else if len(sealed) > 0 {
			logger.InfoContext(ctx, "Retarget sealed active jar", "user_id", userID, "sealed", len(sealed))
		}
	}

	logger.InfoContext(ctx, "Settings updated", "user_id", userID)
	return setting, nil
}

func (s *SettingServiceImpl) SetParentLock(ctx context.Context, userID uuid.UUID, req *dto.SetParentLockRequest) error {
	setting, err := s.GetSettings(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	setting.ParentLockEnabled = true
	setting.ParentLockHash = string(hash)
	setting.UpdatedAt = time.Now()

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Parent lock enabled", "user_id", userID)
	return nil
}

func (s *SettingServiceImpl) DisableParentLock(ctx context.Context, userID uuid.UUID, secret string) error {
	setting, err := s.GetSettings(ctx, userID)
	if err != nil {
		return err
	}
	if !setting.ParentLockEnabled {
		return nil
	}

	if err := s.checkSecret(setting, secret); err != nil {
		logger.WarnContext(ctx, "Parent lock disable rejected", "user_id", userID)
		return err
	}

	setting.ParentLockEnabled = false
	setting.ParentLockHash = ""
	setting.UpdatedAt = time.Now()

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Parent lock disabled", "user_id", userID)
	return nil
}

// ClearData wipes tasks, jars and history. Settings themselves survive
// so the student keeps their XP values and theme.
func (s *SettingServiceImpl) ClearData(ctx context.Context, userID uuid.UUID, req *dto.ClearDataRequest) error {
	setting, err := s.GetSettings(ctx, userID)
	if err != nil {
		return err
	}

	if setting.ParentLockEnabled {
		if err := s.checkSecret(setting, req.Secret); err != nil {
			logger.WarnContext(ctx, "Clear data rejected by parent lock", "user_id", userID)
			return err
		}
	}

	if err := s.taskRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.jarRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.dailyRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	if err := s.weeklyRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	if s.cache != nil {
		if _, err := s.cache.DeletePattern(ctx, fmt.Sprintf("analytics:%s:*", userID)); err != nil {
			logger.WarnContext(ctx, "Failed to invalidate analytics cache", "user_id", userID, "error", err)
		}
	}

	// Start the user over with one fresh jar.
	if _, err := s.jarService.GetActiveJar(ctx, userID); err != nil {
		logger.WarnContext(ctx, "Failed to create fresh jar after clear", "user_id", userID, "error", err)
	}

	logger.InfoContext(ctx, "All data cleared", "user_id", userID)
	return nil
}

func (s *SettingServiceImpl) checkSecret(setting *models.UserSetting, secret string) error {
	if secret == "" {
		return ErrParentLockRequired
	}
	if bcrypt.CompareHashAndPassword([]byte(setting.ParentLockHash), []byte(secret)) != nil {
		return ErrParentLockInvalid
	}
	return nil
}
