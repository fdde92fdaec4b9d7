package nats

import (
	"sync"

	"github.com/nats-io/nats.go"

	"taskjar/pkg/logger"
)

// EventHandler receives every domain event as it is published. The
// payload is the raw JSON; handlers decode what they care about.
type EventHandler func(subject string, payload []byte)

// Subscriber listens on the event subjects over core NATS and fans
// messages out to registered handlers (the websocket hub, mainly).
type Subscriber struct {
	conn       *nats.Conn
	sub        *nats.Subscription
	handlers   []EventHandler
	handlersMu sync.RWMutex
	running    bool
	runningMu  sync.Mutex
}

func NewSubscriber(conn *nats.Conn) *Subscriber {
	return &Subscriber{
		conn:     conn,
		handlers: make([]EventHandler, 0),
	}
}

// OnEvent registers a handler for all domain events.
func (s *Subscriber) OnEvent(handler EventHandler) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlers = append(s.handlers, handler)
}

func (s *Subscriber) Start() error {
	s.runningMu.Lock()
	if s.running {
		s.runningMu.Unlock()
		return nil
	}
	s.running = true
	s.runningMu.Unlock()

	sub, err := s.conn.Subscribe(SubjectWildcard, s.handleMessage)
	if err != nil {
		return err
	}
	s.sub = sub

	logger.Info("NATS subscriber started", "subject", SubjectWildcard)
	return nil
}

func (s *Subscriber) handleMessage(msg *nats.Msg) {
	s.handlersMu.RLock()
	handlers := make([]EventHandler, len(s.handlers))
	copy(handlers, s.handlers)
	s.handlersMu.RUnlock()

	for _, handler := range handlers {
		handler(msg.Subject, msg.Data)
	}
}

func (s *Subscriber) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", "error", err)
		}
		s.sub = nil
	}
	s.running = false
}
