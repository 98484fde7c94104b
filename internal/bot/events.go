package bot

import (
	"sync"
	"time"
)

// EventType identifies what happened inside the bot for a session.
type EventType string

const (
	EventSearchStarted   EventType = "search_started"
	EventSearchCompleted EventType = "search_completed"
	EventSearchFailed    EventType = "search_failed"
	EventKeyUpdated      EventType = "key_updated"
	EventCancelled       EventType = "cancelled"
)

// Event is one bot-side occurrence. Transports subscribe to drive busy
// indicators; tests subscribe to observe the flow.
type Event struct {
	Type      EventType
	SessionID string
	Timestamp time.Time
	Data      map[string]string
}

// EventHandler receives published events. Handlers run synchronously
// on the publishing goroutine and must not block.
type EventHandler func(Event)

// EventBus fans bot events out to subscribers.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
	all      []EventHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]EventHandler)}
}

// Subscribe registers a handler for one event type.
func (eb *EventBus) Subscribe(et EventType, h EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[et] = append(eb.handlers[et], h)
}

// SubscribeAll registers a handler for every event type.
func (eb *EventBus) SubscribeAll(h EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.all = append(eb.all, h)
}

// Publish delivers ev to all matching subscribers.
func (eb *EventBus) Publish(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, h := range eb.handlers[ev.Type] {
		h(ev)
	}
	for _, h := range eb.all {
		h(ev)
	}
}

func (eb *EventBus) publish(et EventType, sessionID string, data map[string]string) {
	eb.Publish(Event{Type: et, SessionID: sessionID, Data: data})
}
