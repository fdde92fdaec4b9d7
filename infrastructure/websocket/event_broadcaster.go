package websocket

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"taskjar/domain/ports"
	"taskjar/infrastructure/nats"
	"taskjar/pkg/logger"
)

// EventBroadcaster turns domain events from the event stream into
// per-user websocket pushes so jar fill animates live.
type EventBroadcaster struct {
	subscriber *nats.Subscriber
	manager    *WebSocketManager
	running    bool
	runningMu  sync.Mutex
}

func NewEventBroadcaster(subscriber *nats.Subscriber) *EventBroadcaster {
	return &EventBroadcaster{
		subscriber: subscriber,
		manager:    Manager,
	}
}

func (b *EventBroadcaster) Start() error {
	b.runningMu.Lock()
	if b.running {
		b.runningMu.Unlock()
		return nil
	}
	b.running = true
	b.runningMu.Unlock()

	b.subscriber.OnEvent(b.handleEvent)
	if err := b.subscriber.Start(); err != nil {
		b.runningMu.Lock()
		b.running = false
		b.runningMu.Unlock()
		return err
	}

	logger.Info("Event broadcaster started")
	return nil
}

func (b *EventBroadcaster) Stop() {
	b.runningMu.Lock()
	defer b.runningMu.Unlock()

	if !b.running {
		return
	}
	b.subscriber.Stop()
	b.running = false
}

func (b *EventBroadcaster) handleEvent(subject string, payload []byte) {
	switch subject {
	case nats.SubjectTaskCompleted:
		var ev ports.TaskCompletedEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			logger.Warn("Bad task.completed payload", "error", err)
			return
		}
		userID, err := uuid.Parse(ev.UserID)
		if err != nil {
			return
		}
		b.manager.BroadcastToUser(userID, "jar_progress", map[string]interface{}{
			"taskId":    ev.TaskID,
			"taskName":  ev.TaskName,
			"xpValue":   ev.XPValue,
			"jarId":     ev.JarID,
			"currentXP": ev.CurrentXP,
			"targetXP":  ev.TargetXP,
		})

	case nats.SubjectJarSealed:
		var ev ports.JarSealedEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			logger.Warn("Bad jar.sealed payload", "error", err)
			return
		}
		userID, err := uuid.Parse(ev.UserID)
		if err != nil {
			return
		}
		b.manager.BroadcastToUser(userID, "jar_sealed", map[string]interface{}{
			"jarId":    ev.JarID,
			"targetXP": ev.TargetXP,
			"tasks":    ev.Tasks,
		})

	case nats.SubjectDailyUpdated:
		var ev ports.DailyUpdatedEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			logger.Warn("Bad daily.updated payload", "error", err)
			return
		}
		userID, err := uuid.Parse(ev.UserID)
		if err != nil {
			return
		}
		b.manager.BroadcastToUser(userID, "daily_updated", map[string]interface{}{
			"date":          ev.DateISO,
			"completionPct": ev.CompletionPct,
		})
	}
}
