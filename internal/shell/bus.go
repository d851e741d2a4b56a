package shell

import (
	"sync"

	"github.com/google/uuid"
)

// Target addresses the window an event is emitted to.
type Target string

const (
	TargetWidget   Target = "widget"
	TargetSettings Target = "settings"
)

// Handler receives an emitted event.
type Handler func(event string)

// Emitter is the cross-window signalling contract: fire-and-forget named
// events between the widget and its settings window. Emit never waits for a
// receiver to acknowledge, so a window may emit and immediately close.
type Emitter interface {
	Emit(event string, target Target)
	Subscribe(event string, target Target, handler Handler) (unsubscribe func())
}

// Bus is the in-process Emitter used by the single-process terminal build.
// Handlers run on the emitting goroutine; they are expected to do nothing
// more than forward a message into their own event loop.
type Bus struct {
	mu       sync.Mutex
	handlers map[string]map[uuid.UUID]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string]map[uuid.UUID]Handler),
	}
}

func (b *Bus) key(event string, target Target) string {
	return string(target) + "/" + event
}

// Emit delivers the event to every live subscription for it. Unknown events
// are dropped silently.
func (b *Bus) Emit(event string, target Target) {
	b.mu.Lock()
	subs := make([]Handler, 0, len(b.handlers[b.key(event, target)]))
	for _, h := range b.handlers[b.key(event, target)] {
		subs = append(subs, h)
	}
	b.mu.Unlock()

	for _, h := range subs {
		h(event)
	}
}

// Subscribe registers a handler for the event and returns a function that
// removes the subscription.
func (b *Bus) Subscribe(event string, target Target, handler Handler) func() {
	id := uuid.New()
	key := b.key(event, target)

	b.mu.Lock()
	if b.handlers[key] == nil {
		b.handlers[key] = make(map[uuid.UUID]Handler)
	}
	b.handlers[key][id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers[key], id)
		b.mu.Unlock()
	}
}
