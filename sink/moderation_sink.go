package sink

import (
	"context"
	"log/slog"
	"sync/atomic"

	"inbox-lab/domain/event"
	"inbox-lab/moderation"
)

// ModerationSink scans inbound message content against the flagged-terms
// list. Matches are logged for the compliance trail; the event itself is
// already immutable in the store and stays untouched.
type ModerationSink struct {
	moderator *moderation.Moderator
	log       *slog.Logger
	flagged   atomic.Int64
}

func NewModerationSink(moderator *moderation.Moderator, log *slog.Logger) *ModerationSink {
	return &ModerationSink{moderator: moderator, log: log}
}

func (m *ModerationSink) Consume(_ context.Context, evt event.StoredEvent) error {
	content, ok := messageContent(evt)
	if !ok || content == "" {
		return nil
	}

	terms := m.moderator.Scan(content)
	if len(terms) == 0 {
		return nil
	}

	m.flagged.Add(1)
	m.log.Warn("Message flagged by moderation",
		"event_id", evt.ID,
		"organization_id", evt.OrganizationID,
		"aggregate_id", evt.AggregateID,
		"terms", terms,
	)
	return nil
}

// FlaggedCount reports how many messages matched since startup.
func (m *ModerationSink) FlaggedCount() int64 {
	return m.flagged.Load()
}
