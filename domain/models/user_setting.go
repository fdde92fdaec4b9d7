package models

import (
	"time"

	"github.com/google/uuid"
)

// UserSetting holds the per-user configuration the ledger and the task
// creation path read: the XP-per-difficulty mapping and the jar target.
// ParentLockHash is a bcrypt hash; the plain secret is never stored.
type UserSetting struct {
	ID                uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	StudentName       string    `gorm:"size:100;default:'Student'"`
	XPLight           int       `gorm:"not null;default:5"`
	XPStandard        int       `gorm:"not null;default:10"`
	XPChallenging     int       `gorm:"not null;default:15"`
	JarTarget         int       `gorm:"not null;default:100"`
	SoundEnabled      bool      `gorm:"not null;default:true"`
	Theme             string    `gorm:"size:20;default:'dark'"`
	ParentLockEnabled bool      `gorm:"not null;default:false"`
	ParentLockHash    string    `gorm:"size:100"`
	UpdatedAt         time.Time
}

func (UserSetting) TableName() string {
	return "user_settings"
}

// XPForDifficulty resolves a task's XP value from its difficulty.
func (s *UserSetting) XPForDifficulty(d Difficulty) int {
	switch d {
	case DifficultyLight:
		return s.XPLight
	case DifficultyChallenging:
		return s.XPChallenging
	default:
		return s.XPStandard
	}
}
