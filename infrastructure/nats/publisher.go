package nats

import (
	"context"
	"encoding/json"

	"taskjar/domain/ports"
	"taskjar/pkg/logger"
)

// Publisher publishes domain events to JetStream. All publishes are
// fire-and-forget: a failed publish is logged and swallowed so event
// delivery never blocks a completion.
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) ports.EventPublisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishTaskCompleted(ctx context.Context, ev *ports.TaskCompletedEvent) {
	p.publish(ctx, SubjectTaskCompleted, ev)
}

func (p *Publisher) PublishJarSealed(ctx context.Context, ev *ports.JarSealedEvent) {
	p.publish(ctx, SubjectJarSealed, ev)
}

func (p *Publisher) PublishDailyUpdated(ctx context.Context, ev *ports.DailyUpdatedEvent) {
	p.publish(ctx, SubjectDailyUpdated, ev)
}

func (p *Publisher) publish(ctx context.Context, subject string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to marshal event", "subject", subject, "error", err)
		return
	}

	if _, err := p.client.js.Publish(ctx, subject, data); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "subject", subject, "error", err)
		return
	}

	logger.DebugContext(ctx, "Event published", "subject", subject)
}
