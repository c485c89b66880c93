//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"inbox-lab/domain/event"
	"inbox-lab/projection"
)

// IEventStore is the durable, ordered, versioned log of domain events.
type IEventStore interface {
	// Append assigns the next version for the aggregate atomically and
	// persists the event. Concurrent appenders never share a version.
	Append(evt event.DomainEvent) (event.StoredEvent, error)
	// GetEvents returns the aggregate's events in ascending version order,
	// starting at fromVersion (inclusive, 0 means from the beginning).
	GetEvents(aggregateID string, fromVersion int64) ([]event.StoredEvent, error)
	// GetEventsByType is a tenant-scoped query, newest first, optionally
	// bounded by creation time.
	GetEventsByType(eventType, organizationID string, from, to *time.Time) ([]event.StoredEvent, error)
	// GetOrganizationEvents pages through a tenant's full feed, newest first.
	GetOrganizationEvents(organizationID string, limit, offset int) ([]event.StoredEvent, error)
	// GetAggregateState returns the current fold of the aggregate, or an
	// empty state when it has no events.
	GetAggregateState(aggregateID string) (projection.State, error)
	// Replay folds the aggregate's events up to toVersion (0 means all).
	Replay(aggregateID string, toVersion int64) (projection.State, error)
	CreateSnapshot(aggregateID string, aggregateType event.AggregateType, organizationID string) error
	// GetSnapshot returns the latest snapshot, or nil when none exists.
	GetSnapshot(aggregateID string) (*event.Snapshot, error)
	Stats(organizationID string) (event.Stats, error)
}

// EventSink consumes persisted events fanned out by the bus.
type EventSink interface {
	Consume(ctx context.Context, evt event.StoredEvent) error
}

// IEventBus persists an event, then fans it out to subscribed sinks.
type IEventBus interface {
	Subscribe(eventType string, sink EventSink)
	SubscribeMany(eventTypes []string, sink EventSink)
	Unsubscribe(eventType string, sink EventSink)
	Publish(ctx context.Context, evt event.DomainEvent) (event.StoredEvent, error)
	RegisteredEventTypes() []string
	ClearSinks()
}

// ISubscriptionRepository keeps webhook subscriptions per organization.
type ISubscriptionRepository interface {
	Save(sub event.Subscription) error
	Get(organizationID, name string) (event.Subscription, error)
	Delete(organizationID, name string) error
	ListByOrganization(organizationID string) ([]event.Subscription, error)
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
