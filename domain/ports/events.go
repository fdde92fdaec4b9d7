package ports

import "context"

// Event payloads are plain structs so the domain layer never sees NATS.

type TaskCompletedEvent struct {
	UserID    string `json:"userId"`
	TaskID    string `json:"taskId"`
	TaskName  string `json:"taskName"`
	XPValue   int    `json:"xpValue"`
	JarID     string `json:"jarId"`
	CurrentXP int    `json:"currentXP"`
	TargetXP  int    `json:"targetXP"`
}

type JarSealedEvent struct {
	UserID   string `json:"userId"`
	JarID    string `json:"jarId"`
	TargetXP int    `json:"targetXP"`
	Tasks    int    `json:"tasks"`
}

type DailyUpdatedEvent struct {
	UserID        string `json:"userId"`
	DateISO       string `json:"date"`
	CompletionPct int    `json:"completionPct"`
}

// EventPublisher fans domain events out to interested consumers (the
// live-progress socket, audit streams). Publishing is fire-and-forget:
// implementations log failures but never surface them to the caller.
type EventPublisher interface {
	PublishTaskCompleted(ctx context.Context, ev *TaskCompletedEvent)
	PublishJarSealed(ctx context.Context, ev *JarSealedEvent)
	PublishDailyUpdated(ctx context.Context, ev *DailyUpdatedEvent)
}
