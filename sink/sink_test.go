package sink

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inbox-lab/domain/event"
	"inbox-lab/mocks"
	"inbox-lab/moderation"
	"inbox-lab/search"
)

func messageEvent(conversationID, orgID, content string, version int64) event.StoredEvent {
	raw, _ := json.Marshal(event.MessageReceived{
		ConversationID: conversationID,
		From:           "+33612345678",
		Content:        content,
		ReceivedAt:     time.Now().UTC(),
	})
	return event.StoredEvent{
		ID: uuid.New(),
		DomainEvent: event.DomainEvent{
			AggregateID:    conversationID,
			AggregateType:  event.AggregateConversation,
			EventType:      event.TypeMessageReceived,
			EventData:      raw,
			OrganizationID: orgID,
		},
		Version:   version,
		CreatedAt: time.Now().UTC(),
	}
}

func Test_SearchSink_Index_And_Find(t *testing.T) {
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer writer.Close()

	searchSink := NewSearchSink(writer, slog.Default())
	ctx := context.Background()

	req.NoError(searchSink.Consume(ctx, messageEvent("conv-1", "org-1", "my invoice is overdue", 1)))
	req.NoError(searchSink.Consume(ctx, messageEvent("conv-2", "org-1", "please call me back", 1)))
	// Same words, different tenant: must stay invisible to org-1.
	req.NoError(searchSink.Consume(ctx, messageEvent("conv-3", "org-2", "invoice question", 1)))

	reader, err := writer.Reader()
	req.NoError(err)
	defer reader.Close()

	hits, err := search.Find(ctx, reader, search.Parse("/find invoice --org org-1"))
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("conv-1", hits[0].ConversationID)
	req.Equal("my invoice is overdue", hits[0].Content)
}

func Test_SearchSink_Skips_Non_Message_Events(t *testing.T) {
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer writer.Close()

	searchSink := NewSearchSink(writer, slog.Default())
	evt := messageEvent("conv-1", "org-1", "ignored", 1)
	evt.EventType = event.TypeConversationCreated

	req.NoError(searchSink.Consume(context.Background(), evt))

	reader, err := writer.Reader()
	req.NoError(err)
	defer reader.Close()

	hits, err := search.Find(context.Background(), reader, search.Parse("/find ignored --org org-1"))
	req.NoError(err)
	req.Empty(hits)
}

func Test_LanguageSink_Counts_Detections(t *testing.T) {
	req := require.New(t)
	languageSink := NewLanguageSink(slog.Default())
	ctx := context.Background()

	req.NoError(languageSink.Consume(ctx, messageEvent("conv-1", "org-1",
		"bonjour, je voudrais savoir où en est ma commande s'il vous plaît", 1)))
	req.NoError(languageSink.Consume(ctx, messageEvent("conv-2", "org-1",
		"hello there, could you please tell me the status of my recent order", 2)))

	counts := languageSink.Counts()
	req.Equal(int64(1), counts["French"])
	req.Equal(int64(1), counts["English"])
}

func Test_ModerationSink_Flags_Matches(t *testing.T) {
	req := require.New(t)
	moderator, err := moderation.NewModerator([]string{"free money"}, '*')
	req.NoError(err)

	moderationSink := NewModerationSink(&moderator, slog.Default())
	ctx := context.Background()

	req.NoError(moderationSink.Consume(ctx, messageEvent("conv-1", "org-1", "get FREE MONEY now", 1)))
	req.NoError(moderationSink.Consume(ctx, messageEvent("conv-1", "org-1", "regular question", 2)))

	req.Equal(int64(1), moderationSink.FlaggedCount())
}

func Test_SnapshotSink_Triggers_On_Threshold(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mockStore := mocks.NewMockIEventStore(ctrl)

	snapshotSink := NewSnapshotSink(mockStore, slog.Default())
	ctx := context.Background()

	// Below the threshold nothing happens.
	req.NoError(snapshotSink.Consume(ctx, messageEvent("conv-1", "org-1", "hi", SnapshotThreshold-1)))

	mockStore.EXPECT().
		CreateSnapshot("conv-1", event.AggregateConversation, "org-1").
		Return(nil).Times(1)
	req.NoError(snapshotSink.Consume(ctx, messageEvent("conv-1", "org-1", "hi again", SnapshotThreshold)))
}

func Test_WebhookSink_Drops_When_Queue_Full(t *testing.T) {
	req := require.New(t)
	deliveries := make(chan event.StoredEvent, 1)
	webhookSink := NewWebhookSink(slog.Default(), deliveries)
	ctx := context.Background()

	req.NoError(webhookSink.Consume(ctx, messageEvent("conv-1", "org-1", "first", 1)))
	// Queue full: the delivery is dropped, publish is never blocked.
	req.NoError(webhookSink.Consume(ctx, messageEvent("conv-1", "org-1", "second", 2)))
	req.Len(deliveries, 1)
}
