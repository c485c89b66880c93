package sink

import (
	"context"
	"log/slog"

	"inbox-lab/contract"
	"inbox-lab/domain/event"
)

// SnapshotThreshold is the number of events after which an aggregate gets
// a fresh snapshot.
const SnapshotThreshold = 10

// SnapshotSink subscribes to the wildcard and materializes a snapshot every
// SnapshotThreshold versions of an aggregate, keeping replay cheap for
// long-lived conversations.
type SnapshotSink struct {
	store     contract.IEventStore
	log       *slog.Logger
	threshold int64
}

func NewSnapshotSink(store contract.IEventStore, log *slog.Logger) *SnapshotSink {
	return &SnapshotSink{store: store, log: log, threshold: SnapshotThreshold}
}

func (s *SnapshotSink) Consume(_ context.Context, evt event.StoredEvent) error {
	if evt.Version%s.threshold != 0 {
		return nil
	}
	s.log.Debug("Snapshot threshold reached",
		"aggregate_id", evt.AggregateID, "version", evt.Version)
	return s.store.CreateSnapshot(evt.AggregateID, evt.AggregateType, evt.OrganizationID)
}
