package ports

import "context"

// GeneratedTask is the collaborator's raw output, still speaking the
// external vocabulary (low/medium/high, easy/moderate/hard). The
// generation service remaps it before anything else touches it.
type GeneratedTask struct {
	Name         string
	Description  string
	Priority     string
	Difficulty   string
	ScheduledFor string // YYYY-MM-DD, weekly plans only
}

// TaskGenerator turns a free-text prompt into candidate tasks. A weekly
// request carries the window so the model can spread tasks across it.
type TaskGenerator interface {
	Generate(ctx context.Context, prompt string) ([]GeneratedTask, error)
	GenerateWeekly(ctx context.Context, prompt, weekStart, weekEnd string) ([]GeneratedTask, error)
}
