package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskjar/domain/models"
	"taskjar/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) CreateBatch(ctx context.Context, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	var tasks []*models.Task
	q := r.filtered(ctx, userID, filter).Order("created_at DESC")
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	err := q.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Updates(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) CountByUserID(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, userID, filter).Count(&count).Error
	return count, err
}

func (r *TaskRepositoryImpl) ListForWindow(ctx context.Context, userID uuid.UUID, fromISO, toISO string) ([]*models.Task, error) {
	// Day bounds must live in the same location the analytics layer
	// buckets with, or midnight-adjacent tasks land in the wrong day.
	from, toExclusive, err := dayWindow(fromISO, toISO, time.Local)
	if err != nil {
		return nil, err
	}

	// Attribution rule: scheduled tasks belong to their scheduled date,
	// everything else to its creation date.
	var tasks []*models.Task
	err = r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("(scheduled_for IS NOT NULL AND scheduled_for BETWEEN ? AND ?) OR (scheduled_for IS NULL AND created_at >= ? AND created_at < ?)",
			fromISO, toISO, from, toExclusive).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

// dayWindow resolves [fromISO, toISO] into the half-open timestamp range
// [from 00:00, day-after-to 00:00) in loc.
func dayWindow(fromISO, toISO string, loc *time.Location) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", fromISO, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.ParseInLocation("2006-01-02", toISO, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to.AddDate(0, 0, 1), nil
}

func (r *TaskRepositoryImpl) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) filtered(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", userID)
	switch filter.Status {
	case "pending":
		q = q.Where("completed = ?", false)
	case "completed":
		q = q.Where("completed = ?", true)
	}
	if filter.Date != "" {
		if day, err := time.Parse("2006-01-02", filter.Date); err == nil {
			q = q.Where("(scheduled_for = ?) OR (scheduled_for IS NULL AND created_at >= ? AND created_at < ?)",
				filter.Date, day, day.AddDate(0, 0, 1))
		}
	}
	return q
}
