package dto

import (
	"time"

	"github.com/google/uuid"
)

type JarResponse struct {
	ID          uuid.UUID   `json:"id"`
	CurrentXP   int         `json:"currentXP"`
	TargetXP    int         `json:"targetXP"`
	FillPct     int         `json:"fillPct"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	TaskIDs     []uuid.UUID `json:"taskIds"`
	CreatedAt   time.Time   `json:"createdAt"`
}

type JarListResponse struct {
	Jars []JarResponse `json:"jars"`
	Meta PaginationMeta `json:"meta"`
}
