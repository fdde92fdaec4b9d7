package models

import (
	"time"

	"github.com/google/uuid"
)

// Jar is a capped XP bucket. A user has exactly one active (uncompleted) jar
// at any time; reaching TargetXP seals the jar and rolls the overflow into a
// fresh one.
type Jar struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CurrentXP   int       `gorm:"not null;default:0"`
	TargetXP    int       `gorm:"not null"`
	Completed   bool      `gorm:"not null;default:false;index"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// TaskIDs are the tasks that contributed XP to this jar. Persisted via
	// the jar_tasks join table; populated by the repository.
	TaskIDs []uuid.UUID `gorm:"-"`
}

func (Jar) TableName() string {
	return "jars"
}

// FillPct returns the fill percentage relative to the jar's target.
func (j *Jar) FillPct() int {
	if j.TargetXP <= 0 {
		return 0
	}
	pct := j.CurrentXP * 100 / j.TargetXP
	if pct > 100 {
		pct = 100
	}
	return pct
}

// JarTask records a task's contribution to a jar. Rows are never removed
// when the referenced task is deleted; sealed jars keep their history.
type JarTask struct {
	JarID     uuid.UUID `gorm:"primaryKey;type:uuid"`
	TaskID    uuid.UUID `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
}

func (JarTask) TableName() string {
	return "jar_tasks"
}
