package repositories

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"inbox-lab/domain/event"
	"inbox-lab/errors"
	"inbox-lab/projection"
)

// appendRetries bounds the optimistic retries when concurrent appenders
// race on the same aggregate's version counter.
const appendRetries = 5

var validate = validator.New()

// EventRepository persists the append-only event log in BadgerDB.
//
// Key layout (zero padding keeps lexicographical order aligned with logical
// order, so prefix scans come back sorted):
//
//	ver:{aggregate_id}                                  -> last version (decimal)
//	evt:{aggregate_id}:{version %010d}                  -> StoredEvent JSON
//	org:{org_id}:{created_at ns %019d}:{event_id}       -> primary key
//	typ:{org_id}:{event_type}:{created_at ns %019d}:{event_id} -> primary key
//	snap:{aggregate_id}:{version %010d}                 -> Snapshot JSON
type EventRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEventRepository(db *badger.DB, log *slog.Logger) *EventRepository {
	return &EventRepository{db: db, log: log}
}

// Append assigns the next per-aggregate version and persists the event.
// Version assignment happens inside a single Badger transaction: the version
// counter is read and rewritten in the same transaction, so Badger's conflict
// detection rejects a concurrent appender and we retry on a fresh snapshot.
func (r *EventRepository) Append(evt event.DomainEvent) (event.StoredEvent, error) {
	if err := validate.Struct(evt); err != nil {
		return event.StoredEvent{}, fmt.Errorf("%w: %v", errors.ErrMissingField, err)
	}
	if !evt.AggregateType.Valid() {
		return event.StoredEvent{}, fmt.Errorf("%w: %q", errors.ErrInvalidAggregateType, evt.AggregateType)
	}

	var stored event.StoredEvent
	for attempt := 0; attempt < appendRetries; attempt++ {
		err := r.db.Update(func(txn *badger.Txn) error {
			version, err := nextVersion(txn, evt.AggregateID)
			if err != nil {
				return err
			}

			stored = event.StoredEvent{
				ID:          uuid.New(),
				DomainEvent: evt,
				Version:     version,
				CreatedAt:   time.Now().UTC(),
			}
			record, err := json.Marshal(stored)
			if err != nil {
				return err
			}

			primary := eventKey(evt.AggregateID, version)
			if err = txn.Set([]byte(versionKey(evt.AggregateID)), []byte(strconv.FormatInt(version, 10))); err != nil {
				return err
			}
			if err = txn.Set([]byte(primary), record); err != nil {
				return err
			}
			if err = txn.Set([]byte(orgKey(stored)), []byte(primary)); err != nil {
				return err
			}
			return txn.Set([]byte(typeKey(stored)), []byte(primary))
		})
		if err == nil {
			return stored, nil
		}
		if goerrors.Is(err, badger.ErrConflict) {
			r.log.Debug("Version race on aggregate, retrying append",
				"aggregate_id", evt.AggregateID, "attempt", attempt+1)
			continue
		}
		return event.StoredEvent{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return event.StoredEvent{}, fmt.Errorf("%w: aggregate %s", errors.ErrVersionConflict, evt.AggregateID)
}

// GetEvents returns the aggregate's events in ascending version order.
// An unknown aggregate yields an empty slice, not an error.
func (r *EventRepository) GetEvents(aggregateID string, fromVersion int64) ([]event.StoredEvent, error) {
	if fromVersion < 1 {
		fromVersion = 1
	}
	var events []event.StoredEvent
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("evt:%s:", aggregateID))
		for it.Seek([]byte(eventKey(aggregateID, fromVersion))); it.ValidForPrefix(prefix); it.Next() {
			var evt event.StoredEvent
			if err := decodeItem(it.Item(), &evt); err != nil {
				return err
			}
			events = append(events, evt)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return events, nil
}

// GetEventsByType returns a tenant's events of one type, newest first,
// optionally bounded by creation time (inclusive).
func (r *EventRepository) GetEventsByType(eventType, organizationID string, from, to *time.Time) ([]event.StoredEvent, error) {
	var events []event.StoredEvent
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("typ:%s:%s:", organizationID, eventType)
		prefix := []byte(prefixStr)

		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Position just past the upper time bound, then walk backwards.
		seekKey := append([]byte{}, prefix...)
		switch to {
		case nil:
			seekKey = append(seekKey, []byte("9999999999999999999")...)
		default:
			seekKey = append(seekKey, []byte(fmt.Sprintf("%019d", to.UnixNano()+1))...)
		}
		it.Seek(seekKey)

		for ; it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ts, ok := timestampFromKey(key[len(prefixStr):])
			if !ok {
				continue
			}
			if from != nil && ts.Before(*from) {
				break
			}
			evt, err := resolve(txn, it.Item())
			if err != nil {
				return err
			}
			events = append(events, evt)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return events, nil
}

// GetOrganizationEvents pages through a tenant's feed, newest first.
// Offset-based: the window is not stable under concurrent appends.
func (r *EventRepository) GetOrganizationEvents(organizationID string, limit, offset int) ([]event.StoredEvent, error) {
	var events []event.StoredEvent
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("org:%s:", organizationID))

		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		skipped := 0
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if skipped < offset {
				skipped++
				continue
			}
			if limit > 0 && len(events) == limit {
				break
			}
			evt, err := resolve(txn, it.Item())
			if err != nil {
				return err
			}
			events = append(events, evt)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return events, nil
}

// GetAggregateState returns the current fold of the aggregate, seeded from
// the latest snapshot when one exists. An aggregate with no events yields
// an empty state.
func (r *EventRepository) GetAggregateState(aggregateID string) (projection.State, error) {
	return r.Replay(aggregateID, 0)
}

// Replay folds the aggregate's events up to toVersion (0 means all).
// The fold is pure and deterministic: replaying the same prefix of events
// always yields the same state.
func (r *EventRepository) Replay(aggregateID string, toVersion int64) (projection.State, error) {
	seed := projection.State{}
	fromVersion := int64(1)

	snap, err := r.GetSnapshot(aggregateID)
	if err != nil {
		return nil, err
	}
	if snap != nil && (toVersion == 0 || snap.Version <= toVersion) {
		seed = projection.State(snap.State).Clone()
		fromVersion = snap.Version + 1
	}

	events, err := r.GetEvents(aggregateID, fromVersion)
	if err != nil {
		return nil, err
	}
	if toVersion > 0 {
		for i, evt := range events {
			if evt.Version > toVersion {
				events = events[:i]
				break
			}
		}
	}
	return projection.Fold(seed, events), nil
}

func versionKey(aggregateID string) string { return "ver:" + aggregateID }

func eventKey(aggregateID string, version int64) string {
	return fmt.Sprintf("evt:%s:%010d", aggregateID, version)
}

func orgKey(evt event.StoredEvent) string {
	return fmt.Sprintf("org:%s:%019d:%s", evt.OrganizationID, evt.CreatedAt.UnixNano(), evt.ID)
}

func typeKey(evt event.StoredEvent) string {
	return fmt.Sprintf("typ:%s:%s:%019d:%s",
		evt.OrganizationID, evt.EventType, evt.CreatedAt.UnixNano(), evt.ID)
}

func nextVersion(txn *badger.Txn, aggregateID string) (int64, error) {
	item, err := txn.Get([]byte(versionKey(aggregateID)))
	if goerrors.Is(err, badger.ErrKeyNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	var current int64
	err = item.Value(func(val []byte) error {
		current, err = strconv.ParseInt(string(val), 10, 64)
		return err
	})
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

// timestampFromKey extracts the padded UnixNano segment leading an index
// key suffix of the form "{ts}:{event_id}".
func timestampFromKey(suffix string) (time.Time, bool) {
	end := strings.IndexByte(suffix, ':')
	if end < 0 {
		return time.Time{}, false
	}
	ns, err := strconv.ParseInt(suffix[:end], 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(0, ns).UTC(), true
}

// resolve follows an index entry to its primary record.
func resolve(txn *badger.Txn, item *badger.Item) (event.StoredEvent, error) {
	var primary []byte
	err := item.Value(func(val []byte) error {
		primary = append([]byte{}, val...)
		return nil
	})
	if err != nil {
		return event.StoredEvent{}, err
	}
	record, err := txn.Get(primary)
	if err != nil {
		return event.StoredEvent{}, err
	}
	var evt event.StoredEvent
	return evt, decodeItem(record, &evt)
}

func decodeItem(item *badger.Item, out any) error {
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}
