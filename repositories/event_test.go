package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"inbox-lab/domain/event"
	"inbox-lab/errors"
	"inbox-lab/projection"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func conversationCreated(aggregateID, orgID string) event.DomainEvent {
	evt, _ := event.New(aggregateID, event.AggregateConversation, orgID,
		event.ConversationCreated{ContactID: "c-1", Status: "open"})
	return evt
}

func Test_Append_Assigns_Contiguous_Versions(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	for i := 0; i < 5; i++ {
		stored, err := repo.Append(conversationCreated("conv-1", "org-1"))
		req.NoError(err)
		req.Equal(int64(i+1), stored.Version)
		req.NotEqual("", stored.ID.String())
		req.False(stored.CreatedAt.IsZero())
	}
}

func Test_Append_Concurrent_Versions_Have_No_Gaps(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	const writers = 4
	const perWriter = 5

	var mu sync.Mutex
	var versions []int64
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				stored, err := repo.Append(conversationCreated("conv-race", "org-1"))
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				versions = append(versions, stored.Version)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	req.Len(versions, writers*perWriter)
	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })
	for i, v := range versions {
		req.Equal(int64(i+1), v)
	}
}

func Test_Append_Rejects_Missing_Fields(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	_, err := repo.Append(event.DomainEvent{
		AggregateType:  event.AggregateConversation,
		EventType:      event.TypeConversationCreated,
		OrganizationID: "org-1",
	})
	req.ErrorIs(err, errors.ErrMissingField)

	_, err = repo.Append(event.DomainEvent{
		AggregateID:    "conv-1",
		AggregateType:  "invoice",
		EventType:      event.TypeConversationCreated,
		OrganizationID: "org-1",
	})
	req.ErrorIs(err, errors.ErrInvalidAggregateType)
}

func Test_GetEvents_From_Version(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	for i := 0; i < 4; i++ {
		_, err := repo.Append(conversationCreated("conv-2", "org-1"))
		req.NoError(err)
	}

	all, err := repo.GetEvents("conv-2", 0)
	req.NoError(err)
	req.Len(all, 4)
	for i, evt := range all {
		req.Equal(int64(i+1), evt.Version)
	}

	tail, err := repo.GetEvents("conv-2", 3)
	req.NoError(err)
	req.Len(tail, 2)
	req.Equal(int64(3), tail[0].Version)

	none, err := repo.GetEvents("conv-unknown", 0)
	req.NoError(err)
	req.Empty(none)
}

func Test_GetEventsByType_Newest_First_With_Bounds(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	var stored []event.StoredEvent
	for i := 0; i < 3; i++ {
		evt, err := repo.Append(conversationCreated("conv-3", "org-1"))
		req.NoError(err)
		stored = append(stored, evt)
		time.Sleep(2 * time.Millisecond)
	}
	// Another tenant's event of the same type must never surface.
	_, err := repo.Append(conversationCreated("conv-other", "org-2"))
	req.NoError(err)

	fetched, err := repo.GetEventsByType(event.TypeConversationCreated, "org-1", nil, nil)
	req.NoError(err)
	req.Len(fetched, 3)
	req.Equal(stored[2].ID, fetched[0].ID)
	req.Equal(stored[0].ID, fetched[2].ID)

	from := stored[1].CreatedAt
	bounded, err := repo.GetEventsByType(event.TypeConversationCreated, "org-1", &from, nil)
	req.NoError(err)
	req.Len(bounded, 2)

	to := stored[0].CreatedAt
	bounded, err = repo.GetEventsByType(event.TypeConversationCreated, "org-1", nil, &to)
	req.NoError(err)
	req.Len(bounded, 1)
	req.Equal(stored[0].ID, bounded[0].ID)
}

func Test_GetOrganizationEvents_Pagination(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	for i := 0; i < 5; i++ {
		_, err := repo.Append(conversationCreated("conv-4", "org-1"))
		req.NoError(err)
		time.Sleep(2 * time.Millisecond)
	}

	page1, err := repo.GetOrganizationEvents("org-1", 2, 0)
	req.NoError(err)
	req.Len(page1, 2)

	page2, err := repo.GetOrganizationEvents("org-1", 2, 2)
	req.NoError(err)
	req.Len(page2, 2)
	req.NotEqual(page1[0].ID, page2[0].ID)

	// Newest first: page1 starts at version 5.
	req.Equal(int64(5), page1[0].Version)
	req.Equal(int64(3), page2[0].Version)

	empty, err := repo.GetOrganizationEvents("org-absent", 10, 0)
	req.NoError(err)
	req.Empty(empty)
}

func Test_Replay_Lifecycle_And_Bounding(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	created, err := event.New("conv-5", event.AggregateConversation, "org-1",
		event.ConversationCreated{ContactID: "c-1", Status: "open"})
	req.NoError(err)
	_, err = repo.Append(created)
	req.NoError(err)

	changed, err := event.New("conv-5", event.AggregateConversation, "org-1",
		event.ConversationStatusChanged{OldStatus: "open", NewStatus: "resolved"})
	req.NoError(err)
	_, err = repo.Append(changed)
	req.NoError(err)

	state, err := repo.Replay("conv-5", 0)
	req.NoError(err)
	req.Equal("conv-5", state["id"])
	req.Equal("resolved", state["status"])
	req.Equal("c-1", state["contactId"])

	// Replaying again without new events yields the same state.
	again, err := repo.Replay("conv-5", 0)
	req.NoError(err)
	req.Equal(state, again)

	// Bounded replay ignores events beyond the requested version.
	bounded, err := repo.Replay("conv-5", 1)
	req.NoError(err)
	req.Equal("open", bounded["status"])

	empty, err := repo.GetAggregateState("conv-never-seen")
	req.NoError(err)
	req.Empty(empty)
}

func Test_Snapshot_Roundtrip_And_Seeded_Replay(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	missing, err := repo.GetSnapshot("conv-6")
	req.NoError(err)
	req.Nil(missing)

	created, err := event.New("conv-6", event.AggregateConversation, "org-1",
		event.ConversationCreated{ContactID: "c-9", Status: "open"})
	req.NoError(err)
	_, err = repo.Append(created)
	req.NoError(err)

	req.NoError(repo.CreateSnapshot("conv-6", event.AggregateConversation, "org-1"))

	snap, err := repo.GetSnapshot("conv-6")
	req.NoError(err)
	req.NotNil(snap)
	req.Equal(int64(1), snap.Version)
	req.Equal("org-1", snap.OrganizationID)

	// Events after the snapshot still apply on top of the seeded state.
	changed, err := event.New("conv-6", event.AggregateConversation, "org-1",
		event.ConversationStatusChanged{OldStatus: "open", NewStatus: "closed"})
	req.NoError(err)
	_, err = repo.Append(changed)
	req.NoError(err)

	state, err := repo.GetAggregateState("conv-6")
	req.NoError(err)
	req.Equal("closed", state["status"])
	req.Equal("c-9", state["contactId"])

	// A fresh fold over the full log agrees with the seeded one.
	events, err := repo.GetEvents("conv-6", 0)
	req.NoError(err)
	req.Len(events, 2)
}

func Test_Stats_Scoped_By_Organization(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	_, err := repo.Append(conversationCreated("conv-7", "org-1"))
	req.NoError(err)
	_, err = repo.Append(conversationCreated("conv-7", "org-1"))
	req.NoError(err)
	_, err = repo.Append(conversationCreated("conv-8", "org-2"))
	req.NoError(err)

	stats, err := repo.Stats("org-1")
	req.NoError(err)
	req.Equal(int64(2), stats.TotalEvents)
	req.Equal(int64(2), stats.ByEventType[event.TypeConversationCreated])
	req.Equal(int64(2), stats.ByAggregateType[string(event.AggregateConversation)])
	req.NotNil(stats.OldestEvent)
	req.NotNil(stats.NewestEvent)

	global, err := repo.Stats("")
	req.NoError(err)
	req.Equal(int64(3), global.TotalEvents)
}

func Test_Stored_Record_Keeps_Payload_Verbatim(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	payload := map[string]any{"contactId": "c-1", "status": "open"}
	raw, err := json.Marshal(payload)
	req.NoError(err)

	_, err = repo.Append(event.DomainEvent{
		AggregateID:    "conv-9",
		AggregateType:  event.AggregateConversation,
		EventType:      event.TypeConversationCreated,
		EventData:      raw,
		Metadata:       map[string]string{"correlation_id": "abc"},
		OrganizationID: "org-1",
		CreatedBy:      "agent-1",
	})
	req.NoError(err)

	events, err := repo.GetEvents("conv-9", 0)
	req.NoError(err)
	req.Len(events, 1)
	req.JSONEq(string(raw), string(events[0].EventData))
	req.Equal("abc", events[0].Metadata["correlation_id"])
	req.Equal("agent-1", events[0].CreatedBy)
}

func Test_Snapshot_State_Matches_Its_Version_Under_Concurrent_Appends(t *testing.T) {
	req := require.New(t)
	repo := NewEventRepository(openTestDB(t), slog.Default())

	created, err := event.New("conv-10", event.AggregateConversation, "org-1",
		event.ConversationCreated{ContactID: "c-1", Status: "open"})
	req.NoError(err)
	_, err = repo.Append(created)
	req.NoError(err)

	// One goroutine keeps appending while snapshots are taken.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			changed, err := event.New("conv-10", event.AggregateConversation, "org-1",
				event.ConversationStatusChanged{OldStatus: "open", NewStatus: fmt.Sprintf("s-%d", i)})
			if err != nil {
				return
			}
			if _, err := repo.Append(changed); err != nil {
				return
			}
		}
	}()

	for i := 0; i < 20; i++ {
		req.NoError(repo.CreateSnapshot("conv-10", event.AggregateConversation, "org-1"))
	}
	close(stop)
	wg.Wait()

	snap, err := repo.GetSnapshot("conv-10")
	req.NoError(err)
	req.NotNil(snap)

	// The snapshot must equal the fold of exactly its first Version events,
	// regardless of what was appended while it was being built.
	events, err := repo.GetEvents("conv-10", 1)
	req.NoError(err)
	req.GreaterOrEqual(int64(len(events)), snap.Version)
	folded := projection.Fold(projection.State{}, events[:snap.Version])
	req.Equal(map[string]any(folded), snap.State)

	// Bounded replay through that snapshot honors the bound too.
	bounded, err := repo.Replay("conv-10", snap.Version)
	req.NoError(err)
	req.Equal(folded, bounded)
}
