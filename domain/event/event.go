// Package event defines the domain event vocabulary of the inbox:
// the envelope persisted in the store, the closed set of aggregate types,
// and the typed payloads producers publish.
package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AggregateType identifies the kind of entity an event belongs to.
type AggregateType string

const (
	AggregateConversation AggregateType = "conversation"
	AggregateMessage      AggregateType = "message"
	AggregateContact      AggregateType = "contact"
	AggregateTemplate     AggregateType = "template"
	AggregateOrganization AggregateType = "organization"
)

// Valid reports whether t is part of the closed enumeration.
func (t AggregateType) Valid() bool {
	switch t {
	case AggregateConversation, AggregateMessage, AggregateContact,
		AggregateTemplate, AggregateOrganization:
		return true
	}
	return false
}

// Wildcard subscribes a sink to every event type on the bus.
const Wildcard = "*"

// DomainEvent is an event as built by a producer, before the store
// assigned an ID and a version.
type DomainEvent struct {
	AggregateID    string            `json:"aggregate_id" validate:"required"`
	AggregateType  AggregateType     `json:"aggregate_type" validate:"required"`
	EventType      string            `json:"event_type" validate:"required"`
	EventData      json.RawMessage   `json:"event_data,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	OrganizationID string            `json:"organization_id" validate:"required"`
	CreatedBy      string            `json:"created_by,omitempty"`
}

// StoredEvent is a DomainEvent once appended: immutable, totally ordered
// per aggregate by Version (1-based, gap-free).
type StoredEvent struct {
	ID uuid.UUID `json:"id"`
	DomainEvent
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is a materialized fold of an aggregate at a given version,
// used to avoid replaying the whole log. Older snapshots are superseded,
// not deleted.
type Snapshot struct {
	AggregateID    string         `json:"aggregate_id"`
	AggregateType  AggregateType  `json:"aggregate_type"`
	State          map[string]any `json:"state"`
	Version        int64          `json:"version"`
	OrganizationID string         `json:"organization_id"`
	CreatedAt      time.Time      `json:"created_at"`
}

// Stats aggregates the event log for one organization (or the whole store).
type Stats struct {
	TotalEvents     int64            `json:"total_events"`
	ByEventType     map[string]int64 `json:"by_event_type"`
	ByAggregateType map[string]int64 `json:"by_aggregate_type"`
	OldestEvent     *time.Time       `json:"oldest_event,omitempty"`
	NewestEvent     *time.Time       `json:"newest_event,omitempty"`
}
