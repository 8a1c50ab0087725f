package event

import (
	"context"
	"log/slog"
	"sync"
)

// Handler consumes one event. Handlers run concurrently with each other and
// with the publisher; they must not assume any ordering across events.
type Handler func(ctx context.Context, evt Event)

// Bus is a minimal in-process pub/sub dispatcher. Each published event is
// delivered to every subscriber of its type in its own goroutine, so slow or
// failing handlers never block the publisher's request path.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
	wg       sync.WaitGroup
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers h for events of type t. Not safe to call concurrently
// with itself for the same bus during Publish-heavy operation; in practice all
// subscriptions happen once at startup.
func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish dispatches evt to all subscribers of its type. The context is
// detached from the caller's request context so in-flight fanout survives the
// HTTP response being written.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	hs := b.handlers[evt.Type]
	b.mu.RUnlock()

	for _, h := range hs {
		h := h
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slog.Error("event handler panicked", "event_type", evt.Type, "event_id", evt.ID, "panic", r)
				}
			}()
			h(context.Background(), evt)
		}()
	}
}

// Wait blocks until all in-flight deliveries complete. Used on shutdown and
// in tests.
func (b *Bus) Wait() {
	b.wg.Wait()
}
