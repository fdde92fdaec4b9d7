package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskjar/domain/models"
	"taskjar/domain/repositories"
)

type DailyCompletionRepositoryImpl struct {
	db *gorm.DB
}

func NewDailyCompletionRepository(db *gorm.DB) repositories.DailyCompletionRepository {
	return &DailyCompletionRepositoryImpl{db: db}
}

func (r *DailyCompletionRepositoryImpl) Upsert(ctx context.Context, record *models.DailyCompletion) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date_iso"}},
		DoUpdates: clause.AssignmentColumns([]string{"completion_pct", "updated_at"}),
	}).Create(record).Error
}

func (r *DailyCompletionRepositoryImpl) ListRange(ctx context.Context, userID uuid.UUID, fromISO, toISO string) ([]*models.DailyCompletion, error) {
	var records []*models.DailyCompletion
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date_iso BETWEEN ? AND ?", userID, fromISO, toISO).
		Order("date_iso ASC").
		Find(&records).Error
	return records, err
}

func (r *DailyCompletionRepositoryImpl) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.DailyCompletion{}).Error
}
