package workers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inbox-lab/contract"
	"inbox-lab/domain/event"
	"inbox-lab/errors"
)

const (
	signatureHeader = "X-Inbox-Signature"
	eventTypeHeader = "X-Inbox-Event-Type"
	tokenLifetime   = 5 * time.Minute
)

// WebhookDeliveryWorker drains the delivery queue fed by the webhook sink
// and pushes each persisted event to every matching subscription of its
// organization. Deliveries are independent: a dead endpoint on one
// subscription never delays another.
type WebhookDeliveryWorker struct {
	log           *slog.Logger
	subscriptions contract.ISubscriptionRepository
	deliveries    <-chan event.StoredEvent
	client        *http.Client
}

func NewWebhookDeliveryWorker(
	log *slog.Logger,
	subscriptions contract.ISubscriptionRepository,
	deliveries <-chan event.StoredEvent,
	requestTimeout time.Duration,
) *WebhookDeliveryWorker {
	return &WebhookDeliveryWorker{
		log:           log,
		subscriptions: subscriptions,
		deliveries:    deliveries,
		client:        &http.Client{Timeout: requestTimeout},
	}
}

func (w *WebhookDeliveryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping webhook delivery")
			return nil
		case evt := <-w.deliveries:
			w.Deliver(ctx, evt)
		}
	}
}

// Deliver fans one event out to every matching subscription of its tenant.
func (w *WebhookDeliveryWorker) Deliver(ctx context.Context, evt event.StoredEvent) {
	subs, err := w.subscriptions.ListByOrganization(evt.OrganizationID)
	if err != nil {
		w.log.Error("Listing subscriptions failed",
			"organization_id", evt.OrganizationID, "error", err)
		return
	}

	body, err := json.Marshal(evt)
	if err != nil {
		w.log.Error("Encoding event for delivery failed", "event_id", evt.ID, "error", err)
		return
	}

	for _, sub := range subs {
		if !sub.Matches(evt.EventType) {
			continue
		}
		if err := w.deliverWithRetry(ctx, sub, evt, body); err != nil {
			w.log.Warn("Webhook delivery abandoned",
				"event_id", evt.ID,
				"subscription", sub.Name,
				"webhook_url", sub.WebhookURL,
				"error", err)
		}
	}
}

// deliverWithRetry runs the subscription's retry policy: MaxRetries extra
// attempts after the first, with a fixed or exponentially growing delay.
func (w *WebhookDeliveryWorker) deliverWithRetry(ctx context.Context, sub event.Subscription, evt event.StoredEvent, body []byte) error {
	policy := sub.RetryPolicy
	delay := policy.Delay

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			if policy.Exponential {
				delay *= 2
			}
		}

		lastErr = w.post(ctx, sub, evt, body)
		if lastErr == nil {
			w.log.Debug("Webhook delivered",
				"event_id", evt.ID, "subscription", sub.Name, "attempt", attempt+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %v", errors.ErrDeliveryExhausted, lastErr)
}

func (w *WebhookDeliveryWorker) post(ctx context.Context, sub event.Subscription, evt event.StoredEvent, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}

	token, err := deliveryToken(sub, evt)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(eventTypeHeader, evt.EventType)
	req.Header.Set(signatureHeader, Sign(body, sub.WebhookSecret))
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint answered %s", resp.Status)
	}
	return nil
}

// Sign computes the hex HMAC-SHA256 of the delivery body with the
// subscription secret. Receivers recompute it to authenticate the payload.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type deliveryClaims struct {
	EventID        string `json:"event_id"`
	OrganizationID string `json:"organization_id"`
	jwt.RegisteredClaims
}

// deliveryToken creates a short-lived JWT identifying the delivery, signed
// with the subscription secret (HMAC with SHA256).
func deliveryToken(sub event.Subscription, evt event.StoredEvent) (string, error) {
	now := time.Now()
	claims := &deliveryClaims{
		EventID:        evt.ID.String(),
		OrganizationID: evt.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "inbox-lab",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sub.WebhookSecret))
}
