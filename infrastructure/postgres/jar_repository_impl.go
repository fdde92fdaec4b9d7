package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskjar/domain/models"
	"taskjar/domain/repositories"
)

type JarRepositoryImpl struct {
	db *gorm.DB
}

func NewJarRepository(db *gorm.DB) repositories.JarRepository {
	return &JarRepositoryImpl{db: db}
}

func (r *JarRepositoryImpl) Create(ctx context.Context, jar *models.Jar) error {
	return r.db.WithContext(ctx).Create(jar).Error
}

func (r *JarRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Jar, error) {
	var jar models.Jar
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&jar).Error
	if err != nil {
		return nil, err
	}
	return &jar, nil
}

func (r *JarRepositoryImpl) GetActive(ctx context.Context, userID uuid.UUID) (*models.Jar, error) {
	var jar models.Jar
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, false).
		Order("created_at DESC").
		First(&jar).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &jar, nil
}

func (r *JarRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Jar, error) {
	var jars []*models.Jar
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&jars).Error
	return jars, err
}

func (r *JarRepositoryImpl) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Jar{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *JarRepositoryImpl) Update(ctx context.Context, id uuid.UUID, jar *models.Jar) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(jar).Error
}

func (r *JarRepositoryImpl) GetTaskIDs(ctx context.Context, jarID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.JarTask{}).
		Where("jar_id = ?", jarID).
		Order("created_at ASC").
		Pluck("task_id", &ids).Error
	return ids, err
}

func (r *JarRepositoryImpl) SaveCompletion(ctx context.Context, task *models.Task, credited *models.Jar, sealed []*models.Jar, created *models.Jar) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(task).Error; err != nil {
			return err
		}

		seen := make(map[uuid.UUID]bool)
		jars := make([]*models.Jar, 0, len(sealed)+2)
		for _, j := range append(append([]*models.Jar{credited}, sealed...), created) {
			if j == nil || seen[j.ID] {
				continue
			}
			seen[j.ID] = true
			jars = append(jars, j)
		}
		for _, j := range jars {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(j).Error; err != nil {
				return err
			}
		}

		link := models.JarTask{JarID: credited.ID, TaskID: task.ID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
}

func (r *JarRepositoryImpl) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("jar_id IN (?)",
			tx.Model(&models.Jar{}).Select("id").Where("user_id = ?", userID),
		).Delete(&models.JarTask{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.Jar{}).Error
	})
}
