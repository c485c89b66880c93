package sink

import (
	"context"
	"log/slog"

	"github.com/blugelabs/bluge"

	"inbox-lab/domain/event"
)

// SearchSink feeds the full-text index behind inbox search. Every inbound
// message event becomes one Bluge document keyed by the store event ID, so
// re-indexing the same event is an idempotent update.
type SearchSink struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchSink(writer *bluge.Writer, log *slog.Logger) *SearchSink {
	return &SearchSink{writer: writer, log: log}
}

func (s *SearchSink) Consume(_ context.Context, evt event.StoredEvent) error {
	content, ok := messageContent(evt)
	if !ok || content == "" {
		return nil
	}

	doc := bluge.NewDocument(evt.ID.String())
	doc.AddField(bluge.NewTextField("content", content).StoreValue())
	doc.AddField(bluge.NewKeywordField("organization_id", evt.OrganizationID).StoreValue())
	doc.AddField(bluge.NewKeywordField("conversation_id", evt.AggregateID).StoreValue())
	doc.AddField(bluge.NewKeywordField("event_type", evt.EventType).StoreValue())
	doc.AddField(bluge.NewDateTimeField("created_at", evt.CreatedAt).StoreValue())

	if err := s.writer.Update(doc.ID(), doc); err != nil {
		return err
	}
	s.log.Debug("Message indexed", "event_id", evt.ID, "conversation_id", evt.AggregateID)
	return nil
}
