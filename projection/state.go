// Package projection holds the canonical fold that turns an ordered event
// sequence into aggregate state. It is the only fold in the codebase: both
// replay and snapshot creation go through it, so the two can never drift.
package projection

import (
	"encoding/json"
	"strings"
	"time"

	"inbox-lab/domain/event"
)

// State is the accumulated shape of an aggregate. Payloads are free-form,
// so the fold works on decoded JSON rather than on typed structs.
type State map[string]any

// Clone returns a shallow copy, so a fold never mutates a snapshot it was
// seeded from.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Apply folds a single event into the state. Unknown event types and
// undecodable payloads leave the state untouched: replay must never fail
// on an event it does not recognize.
func Apply(state State, evt event.StoredEvent) State {
	switch evt.EventType {
	case event.TypeConversationStatusChanged:
		data, ok := decode(evt.EventData)
		if !ok {
			return state
		}
		if status, ok := data["newStatus"]; ok {
			state["status"] = status
		}
		return state

	case event.TypeConversationAssigned:
		data, ok := decode(evt.EventData)
		if !ok {
			return state
		}
		if assignee, ok := data["assignedTo"]; ok {
			state["assignedTo"] = assignee
		}
		return state

	case event.TypeContactUpdated:
		data, ok := decode(evt.EventData)
		if !ok {
			return state
		}
		fields, ok := data["updatedFields"].(map[string]any)
		if !ok {
			return state
		}
		for k, v := range fields {
			state[k] = v
		}
		return state
	}

	// Any *Created event replaces the state wholesale, tagged with the
	// aggregate identity and the store timestamp.
	if strings.HasSuffix(evt.EventType, "Created") {
		data, ok := decode(evt.EventData)
		if !ok {
			data = State{}
		}
		data["id"] = evt.AggregateID
		// RFC3339 keeps the state stable across a snapshot JSON round-trip.
		data["createdAt"] = evt.CreatedAt.UTC().Format(time.RFC3339Nano)
		return data
	}

	return state
}

// Fold replays events in order onto seed. A nil seed starts empty.
func Fold(seed State, events []event.StoredEvent) State {
	state := seed
	if state == nil {
		state = State{}
	}
	for _, evt := range events {
		state = Apply(state, evt)
	}
	return state
}

func decode(raw json.RawMessage) (State, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var data State
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, false
	}
	return data, true
}
