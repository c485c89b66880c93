// Package eventbus routes persisted domain events to in-process sinks.
//
// The bus provides best-effort fan-out: persistence through the event store
// is the only guarantee. A sink failure is logged and swallowed; it never
// reaches the publisher and never blocks a sibling sink.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"inbox-lab/contract"
	"inbox-lab/domain/event"
)

const defaultSinkTimeout = 5 * time.Second

// Bus is an explicit, injected object owned by the composition root.
// Sinks registered for an event type (or for event.Wildcard) receive every
// event of that type after it has been durably appended.
type Bus struct {
	store       contract.IEventStore
	log         *slog.Logger
	sinkTimeout time.Duration

	mu    sync.RWMutex
	sinks map[string][]contract.EventSink
}

type Option func(*Bus)

// WithSinkTimeout bounds each sink invocation. A sink that ignores its
// context cannot hang Publish past this deadline.
func WithSinkTimeout(d time.Duration) Option {
	return func(b *Bus) { b.sinkTimeout = d }
}

func New(store contract.IEventStore, log *slog.Logger, opts ...Option) *Bus {
	b := &Bus{
		store:       store,
		log:         log,
		sinkTimeout: defaultSinkTimeout,
		sinks:       make(map[string][]contract.EventSink),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe appends the sink to the list for eventType. Registration order
// is kept; registering the same sink twice invokes it twice.
func (b *Bus) Subscribe(eventType string, sink contract.EventSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks[eventType] = append(b.sinks[eventType], sink)
}

func (b *Bus) SubscribeMany(eventTypes []string, sink contract.EventSink) {
	for _, eventType := range eventTypes {
		b.Subscribe(eventType, sink)
	}
}

// Unsubscribe removes the first matching registration of the sink for that
// type, comparing by identity. A sink that was never registered is a no-op.
func (b *Bus) Unsubscribe(eventType string, sink contract.EventSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	registered := b.sinks[eventType]
	for i, s := range registered {
		if s == sink {
			b.sinks[eventType] = append(registered[:i:i], registered[i+1:]...)
			if len(b.sinks[eventType]) == 0 {
				delete(b.sinks, eventType)
			}
			return
		}
	}
}

// Publish appends the event, then fans it out.
//
// Persist-before-notify is the central invariant: when the append fails no
// sink runs, so a subscriber can never observe an event that might later
// disappear. Fan-out is concurrent; Publish waits for every sink to settle
// but succeeds regardless of how they behaved.
func (b *Bus) Publish(ctx context.Context, evt event.DomainEvent) (event.StoredEvent, error) {
	stored, err := b.store.Append(evt)
	if err != nil {
		return event.StoredEvent{}, err
	}

	b.mu.RLock()
	targets := make([]contract.EventSink, 0,
		len(b.sinks[evt.EventType])+len(b.sinks[event.Wildcard]))
	targets = append(targets, b.sinks[evt.EventType]...)
	targets = append(targets, b.sinks[event.Wildcard]...)
	b.mu.RUnlock()

	var wg sync.WaitGroup
	for _, sink := range targets {
		wg.Add(1)
		go func(sink contract.EventSink) {
			defer wg.Done()
			b.consume(ctx, sink, stored)
		}(sink)
	}
	wg.Wait()

	return stored, nil
}

// consume runs one sink with a bounded context, trapping both returned
// errors and panics so a bad subscriber cannot take the system down.
//
// The sink runs in its own goroutine and consume stops waiting at the
// timeout even when the sink ignores its context. An overrunning sink is
// abandoned: its goroutine keeps running to completion, but it can no
// longer delay Publish.
func (b *Bus) consume(ctx context.Context, sink contract.EventSink, evt event.StoredEvent) {
	sinkCtx, cancel := context.WithTimeout(ctx, b.sinkTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.log.Error("Sink panicked",
					"event_id", evt.ID, "event_type", evt.EventType,
					"sink", fmt.Sprintf("%T", sink), "panic", r)
				done <- nil
			}
		}()
		done <- sink.Consume(sinkCtx, evt)
	}()

	select {
	case err := <-done:
		if err != nil {
			b.log.Error("Sink failed",
				"event_id", evt.ID, "event_type", evt.EventType,
				"sink", fmt.Sprintf("%T", sink), "error", err)
		}
	case <-sinkCtx.Done():
		b.log.Error("Sink timed out, abandoning it",
			"event_id", evt.ID, "event_type", evt.EventType,
			"sink", fmt.Sprintf("%T", sink), "timeout", b.sinkTimeout)
	}
}

// RegisteredEventTypes lists the distinct types with at least one sink,
// including the wildcard when used.
func (b *Bus) RegisteredEventTypes() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	types := make([]string, 0, len(b.sinks))
	for eventType := range b.sinks {
		types = append(types, eventType)
	}
	return types
}

// ClearSinks resets the registry. Test isolation only.
func (b *Bus) ClearSinks() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = make(map[string][]contract.EventSink)
}
