package sink

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/abadojack/whatlanggo"

	"inbox-lab/domain/event"
)

// minLanguageConfidence filters out detections on short or ambiguous text.
const minLanguageConfidence = 0.6

// LanguageSink detects the language of inbound message content, feeding the
// per-language counters agents see on the inbox dashboard.
type LanguageSink struct {
	log *slog.Logger

	mu     sync.Mutex
	counts map[string]int64
}

func NewLanguageSink(log *slog.Logger) *LanguageSink {
	return &LanguageSink{log: log, counts: make(map[string]int64)}
}

func (l *LanguageSink) Consume(_ context.Context, evt event.StoredEvent) error {
	content, ok := messageContent(evt)
	if !ok || content == "" {
		return nil
	}

	info := whatlanggo.Detect(content)
	if info.Confidence < minLanguageConfidence {
		return nil
	}
	lang := info.Lang.String()

	l.mu.Lock()
	l.counts[lang]++
	l.mu.Unlock()

	l.log.Debug("Language detected",
		"event_id", evt.ID, "language", lang, "confidence", info.Confidence)
	return nil
}

// Counts returns a copy of the per-language totals.
func (l *LanguageSink) Counts() map[string]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]int64, len(l.counts))
	for lang, n := range l.counts {
		out[lang] = n
	}
	return out
}

// messageContent pulls the text out of message-bearing events. Non-message
// events have nothing to analyze.
func messageContent(evt event.StoredEvent) (string, bool) {
	if evt.EventType != event.TypeMessageReceived && evt.EventType != event.TypeMessageCreated {
		return "", false
	}
	var payload struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(evt.EventData, &payload); err != nil {
		return "", false
	}
	return payload.Content, true
}
