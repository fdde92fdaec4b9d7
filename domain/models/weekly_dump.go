package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyDump records one weekly planning session: the prompt sent to the
// generation collaborator and how many tasks came back.
type WeeklyDump struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	WeekStart      string    `gorm:"size:10;not null"` // YYYY-MM-DD
	WeekEnd        string    `gorm:"size:10;not null"`
	Prompt         string    `gorm:"type:text"`
	TasksGenerated int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
}

func (WeeklyDump) TableName() string {
	return "weekly_dumps"
}
