package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority is the internal task priority vocabulary.
type Priority string

const (
	PriorityUrgent    Priority = "urgent"
	PriorityScheduled Priority = "scheduled"
	PriorityOptional  Priority = "optional"
)

// Difficulty is the internal task difficulty vocabulary. XP is derived
// from difficulty once, at creation time, and frozen on the task.
type Difficulty string

const (
	DifficultyLight       Difficulty = "light"
	DifficultyStandard    Difficulty = "standard"
	DifficultyChallenging Difficulty = "challenging"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityUrgent, PriorityScheduled, PriorityOptional:
		return true
	default:
		return false
	}
}

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyLight, DifficultyStandard, DifficultyChallenging:
		return true
	default:
		return false
	}
}

type Task struct {
	ID           uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name         string     `gorm:"not null"`
	Description  string     `gorm:"type:text"`
	Priority     Priority   `gorm:"size:20;not null;default:'scheduled'"`
	Difficulty   Difficulty `gorm:"size:20;not null;default:'standard'"`
	XPValue      int        `gorm:"not null"`
	Completed    bool       `gorm:"not null;default:false"`
	CompletedAt  *time.Time
	ScheduledFor *string `gorm:"size:10"` // YYYY-MM-DD, nil = belongs to its creation day
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// DayKey returns the calendar day this task is attributed to: the scheduled
// date when present, otherwise the creation date in loc.
func (t *Task) DayKey(loc *time.Location) string {
	if t.ScheduledFor != nil && *t.ScheduledFor != "" {
		return *t.ScheduledFor
	}
	return t.CreatedAt.In(loc).Format("2006-01-02")
}
