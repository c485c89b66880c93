package event

import "time"

// RetryPolicy controls how webhook delivery retries a failing endpoint.
type RetryPolicy struct {
	MaxRetries  int           `json:"max_retries"`
	Delay       time.Duration `json:"delay"`
	Exponential bool          `json:"exponential"`
}

// DefaultRetryPolicy is applied when a subscription declares none.
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, Delay: 2 * time.Second, Exponential: true}

// Subscription routes persisted events of an organization to an external
// webhook. Many subscriptions may listen to the same event type; each
// delivery is independent.
type Subscription struct {
	OrganizationID string      `json:"organization_id"`
	Name           string      `json:"name"`
	EventTypes     []string    `json:"event_types"`
	WebhookURL     string      `json:"webhook_url"`
	WebhookSecret  string      `json:"webhook_secret"`
	Enabled        bool        `json:"enabled"`
	RetryPolicy    RetryPolicy `json:"retry_policy"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Matches reports whether the subscription wants the given event type.
// An empty EventTypes list or a "*" entry matches everything.
func (s Subscription) Matches(eventType string) bool {
	if !s.Enabled {
		return false
	}
	if len(s.EventTypes) == 0 {
		return true
	}
	for _, t := range s.EventTypes {
		if t == Wildcard || t == eventType {
			return true
		}
	}
	return false
}
