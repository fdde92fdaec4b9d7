package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskjar/domain/models"
	"taskjar/domain/repositories"
)

type WeeklyDumpRepositoryImpl struct {
	db *gorm.DB
}

func NewWeeklyDumpRepository(db *gorm.DB) repositories.WeeklyDumpRepository {
	return &WeeklyDumpRepositoryImpl{db: db}
}

func (r *WeeklyDumpRepositoryImpl) Create(ctx context.Context, dump *models.WeeklyDump) error {
	return r.db.WithContext(ctx).Create(dump).Error
}

func (r *WeeklyDumpRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.WeeklyDump, error) {
	var dumps []*models.WeeklyDump
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&dumps).Error
	return dumps, err
}

func (r *WeeklyDumpRepositoryImpl) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.WeeklyDump{}).Error
}
