package serviceimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskjar/domain/ledger"
	"taskjar/domain/models"
	"taskjar/domain/ports"
	"taskjar/domain/repositories"
	"taskjar/domain/services"
	"taskjar/pkg/logger"
	"time"
)

type JarServiceImpl struct {
	jarRepo     repositories.JarRepository
	settingRepo repositories.SettingRepository
	publisher   ports.EventPublisher
	locks       *UserLocks
	defaults    SettingsDefaults
}

func NewJarService(
	jarRepo repositories.JarRepository,
	settingRepo repositories.SettingRepository,
	publisher ports.EventPublisher,
	locks *UserLocks,
	defaults SettingsDefaults,
) services.JarService {
	return &JarServiceImpl{
		jarRepo:     jarRepo,
		settingRepo: settingRepo,
		publisher:   publisher,
		locks:       locks,
		defaults:    defaults,
	}
}

func (s *JarServiceImpl) GetActiveJar(ctx context.Context, userID uuid.UUID) (*models.Jar, error) {
	jar, err := s.jarRepo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	if jar == nil {
		// First touch: materialize the user's first jar.
		target := s.defaults.JarTarget
		if setting, err := s.settingRepo.GetByUserID(ctx, userID); err == nil && setting != nil {
			target = setting.JarTarget
		}
		jar = ledger.NewJar(userID, ledger.Config{TargetXP: target}, time.Now())
		if err := s.jarRepo.Create(ctx, jar); err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "First jar created", "user_id", userID, "jar_id", jar.ID, "target", target)
	}

	return s.withTaskIDs(ctx, jar)
}

func (s *JarServiceImpl) ListJars(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Jar, int64, error) {
	jars, err := s.jarRepo.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for _, jar := range jars {
		if _, err := s.withTaskIDs(ctx, jar); err != nil {
			return nil, 0, err
		}
	}
	total, err := s.jarRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return jars, total, nil
}

func (s *JarServiceImpl) GetJar(ctx context.Context, userID, jarID uuid.UUID) (*models.Jar, error) {
	jar, err := s.jarRepo.GetByID(ctx, jarID)
	if err != nil || jar.UserID != userID {
		return nil, errors.New("jar not found")
	}
	return s.withTaskIDs(ctx, jar)
}

func (s *JarServiceImpl) Retarget(ctx context.Context, userID uuid.UUID, newTarget int) (*models.Jar, []*models.Jar, error) {
	unlock := s.locks.Lock(userID.String())
	defer unlock()

	active, err := s.GetActiveJar(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	res, err := ledger.Retarget(active, newTarget, now)
	if err != nil {
		return nil, nil, err
	}

	if err := s.jarRepo.Update(ctx, active.ID, active); err != nil {
		return nil, nil, err
	}
	for _, created := range res.Created {
		if err := s.jarRepo.Create(ctx, created); err != nil {
			return nil, nil, err
		}
	}

	for _, jar := range res.Sealed {
		logger.InfoContext(ctx, "Jar sealed by retarget", "user_id", userID, "jar_id", jar.ID, "target", jar.TargetXP)
		if s.publisher != nil {
			s.publisher.PublishJarSealed(ctx, &ports.JarSealedEvent{
				UserID:   jar.UserID.String(),
				JarID:    jar.ID.String(),
				TargetXP: jar.TargetXP,
				Tasks:    len(jar.TaskIDs),
			})
		}
	}

	return res.Active, res.Sealed, nil
}

func (s *JarServiceImpl) withTaskIDs(ctx context.Context, jar *models.Jar) (*models.Jar, error) {
	ids, err := s.jarRepo.GetTaskIDs(ctx, jar.ID)
	if err != nil {
		return nil, err
	}
	jar.TaskIDs = ids
	return jar, nil
}
