package dto

import "time"

// GenerateTasksRequest proxies a free-text goal to the generation
// collaborator.
type GenerateTasksRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=2000"`
}

// GenerateWeeklyRequest plans a 7-day window starting at WeekStart.
type GenerateWeeklyRequest struct {
	Prompt    string `json:"prompt" validate:"required,min=1,max=2000"`
	WeekStart string `json:"weekStart" validate:"required,datetime=2006-01-02"`
}

// GeneratedTask is a candidate task already remapped into the internal
// vocabulary, ready for bulk import.
type GeneratedTask struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	Difficulty   string `json:"difficulty"`
	XPValue      int    `json:"xpValue"`
	ScheduledFor string `json:"scheduledFor,omitempty"`
}

type GenerateTasksResponse struct {
	Tasks []GeneratedTask `json:"tasks"`
	// Fallback is true when the collaborator failed and the deterministic
	// placeholder list was returned instead.
	Fallback bool `json:"fallback"`
}

// WeeklyDumpResponse is one recorded weekly planning session.
type WeeklyDumpResponse struct {
	ID             string    `json:"id"`
	WeekStart      string    `json:"weekStart"`
	WeekEnd        string    `json:"weekEnd"`
	Prompt         string    `json:"prompt"`
	TasksGenerated int       `json:"tasksGenerated"`
	CreatedAt      time.Time `json:"createdAt"`
}
