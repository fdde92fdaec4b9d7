package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"omitempty,max=1000"`
	Priority     string `json:"priority" validate:"omitempty,oneof=urgent scheduled optional"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=light standard challenging"`
	ScheduledFor string `json:"scheduledFor" validate:"omitempty,datetime=2006-01-02"`
}

type BulkCreateTasksRequest struct {
	Tasks []CreateTaskRequest `json:"tasks" validate:"required,min=1,max=100,dive"`
}

type UpdateTaskRequest struct {
	Name         string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=1000"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=urgent scheduled optional"`
	Difficulty   string  `json:"difficulty" validate:"omitempty,oneof=light standard challenging"`
	ScheduledFor *string `json:"scheduledFor" validate:"omitempty,datetime=2006-01-02"`
}

type TaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	Difficulty   string     `json:"difficulty"`
	XPValue      int        `json:"xpValue"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	ScheduledFor *string    `json:"scheduledFor,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type TaskFilterRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending completed"`
	Date   string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// CompleteTaskResponse carries the updated task plus the full ledger
// outcome so the client can animate seals without a second round trip.
type CompleteTaskResponse struct {
	Task       TaskResponse  `json:"task"`
	ActiveJar  JarResponse   `json:"activeJar"`
	SealedJars []JarResponse `json:"sealedJars,omitempty"`
}
