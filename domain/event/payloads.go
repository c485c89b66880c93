package event

import (
	"encoding/json"
	"time"
)

// Event type tags. Replay recognizes these; anything else is a no-op.
const (
	TypeConversationCreated       = "ConversationCreated"
	TypeConversationStatusChanged = "ConversationStatusChanged"
	TypeConversationAssigned      = "ConversationAssigned"
	TypeMessageReceived           = "MessageReceived"
	TypeMessageCreated            = "MessageCreated"
	TypeContactCreated            = "ContactCreated"
	TypeContactUpdated            = "ContactUpdated"
	TypeTemplateCreated           = "TemplateCreated"
	TypeOrganizationCreated       = "OrganizationCreated"
)

// Payload is the typed content of a DomainEvent. Each payload knows the
// event type tag it is stored under.
type Payload interface {
	EventName() string
}

type ConversationCreated struct {
	ContactID   string `json:"contactId"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Status      string `json:"status"`
	Channel     string `json:"channel,omitempty"`
}

func (ConversationCreated) EventName() string { return TypeConversationCreated }

type ConversationStatusChanged struct {
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
}

func (ConversationStatusChanged) EventName() string { return TypeConversationStatusChanged }

type ConversationAssigned struct {
	AssignedTo string `json:"assignedTo"`
	AssignedBy string `json:"assignedBy,omitempty"`
}

func (ConversationAssigned) EventName() string { return TypeConversationAssigned }

// MessageReceived is an inbound WhatsApp message landing in the inbox.
type MessageReceived struct {
	ConversationID string    `json:"conversationId"`
	From           string    `json:"from"`
	Content        string    `json:"content"`
	MediaURL       string    `json:"mediaUrl,omitempty"`
	ReceivedAt     time.Time `json:"receivedAt"`
}

func (MessageReceived) EventName() string { return TypeMessageReceived }

type ContactCreated struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

func (ContactCreated) EventName() string { return TypeContactCreated }

// ContactUpdated carries only the fields that changed. Replay shallow-merges
// UpdatedFields into the accumulated state.
type ContactUpdated struct {
	UpdatedFields map[string]any `json:"updatedFields"`
}

func (ContactUpdated) EventName() string { return TypeContactUpdated }

type TemplateCreated struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Body     string `json:"body"`
}

func (TemplateCreated) EventName() string { return TypeTemplateCreated }

type OrganizationCreated struct {
	Name string `json:"name"`
	Plan string `json:"plan,omitempty"`
}

func (OrganizationCreated) EventName() string { return TypeOrganizationCreated }

// New builds a DomainEvent envelope around a typed payload.
func New(aggregateID string, aggregateType AggregateType, organizationID string, payload Payload) (DomainEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return DomainEvent{}, err
	}
	return DomainEvent{
		AggregateID:    aggregateID,
		AggregateType:  aggregateType,
		EventType:      payload.EventName(),
		EventData:      data,
		OrganizationID: organizationID,
	}, nil
}
