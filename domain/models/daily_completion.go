package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyCompletion is the derived per-day completion percentage. One row per
// user per calendar day; written on every task mutation and by the nightly
// snapshot job, so days without activity still get a zero row.
type DailyCompletion struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_user_date"`
	DateISO       string    `gorm:"size:10;not null;uniqueIndex:idx_daily_user_date"` // YYYY-MM-DD
	CompletionPct int       `gorm:"not null;default:0"`                               // 0-100
	UpdatedAt     time.Time
}

func (DailyCompletion) TableName() string {
	return "daily_completions"
}
