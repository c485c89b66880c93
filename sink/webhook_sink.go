package sink

import (
	"context"
	"log/slog"

	"inbox-lab/domain/event"
)

// WebhookSink bridges the bus to the webhook delivery worker. It only
// enqueues: delivery, signing and retries happen in the worker so a slow
// endpoint never holds up publish fan-out.
type WebhookSink struct {
	log        *slog.Logger
	deliveries chan<- event.StoredEvent
}

func NewWebhookSink(log *slog.Logger, deliveries chan<- event.StoredEvent) *WebhookSink {
	return &WebhookSink{log: log, deliveries: deliveries}
}

func (w *WebhookSink) Consume(_ context.Context, evt event.StoredEvent) error {
	select {
	case w.deliveries <- evt:
		return nil
	default:
		// The queue is full; the event is already durable in the store,
		// dropping the delivery beats blocking the publisher.
		w.log.Warn("Webhook delivery queue full, dropping delivery",
			"event_id", evt.ID, "event_type", evt.EventType)
		return nil
	}
}
