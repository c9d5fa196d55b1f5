package eventbus

import (
	"io"
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"viewpager/internal/domain"
)

// DomainEvent and EventType are the domain types the bus is keyed on
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run synchronously on the publishing goroutine, in registration order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	logger   *log.Logger
}

// New creates a new event bus. A nil logger discards log output.
func New(logger *log.Logger) EventBus {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &bus{
		handlers: make(map[EventType][]subscription),
		logger:   logger,
	}
}

// Publish delivers an event to all subscribers of its type
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case domain.EventScroll, domain.EventSwipeMove:
	default:
		b.logger.Debug("publishing event", "type", event.Type())
	}

	if !event.Type().Known() {
		b.logger.Warn("dropping event with unknown type", "type", event.Type())
		return
	}

	// Make a copy to avoid holding lock during handler execution
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic", "type", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function; calling it more than once is harmless.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}
