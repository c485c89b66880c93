package workers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"inbox-lab/domain/event"
	"inbox-lab/errors"
	"inbox-lab/mocks"
)

func storedEvent(orgID string) event.StoredEvent {
	return event.StoredEvent{
		ID: uuid.New(),
		DomainEvent: event.DomainEvent{
			AggregateID:    "conv-42",
			AggregateType:  event.AggregateConversation,
			EventType:      event.TypeMessageReceived,
			EventData:      json.RawMessage(`{"content":"hello"}`),
			OrganizationID: orgID,
		},
		Version:   1,
		CreatedAt: time.Now().UTC(),
	}
}

func TestWebhookDelivery_SignsAndAuthenticates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const secret = "s3cret"
	evt := storedEvent("org-1")

	var gotSignature, gotBearer string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Inbox-Signature")
		gotBearer = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	repo := mocks.NewMockISubscriptionRepository(ctrl)
	repo.EXPECT().
		ListByOrganization("org-1").
		Return([]event.Subscription{{
			OrganizationID: "org-1",
			Name:           "crm",
			EventTypes:     []string{event.TypeMessageReceived},
			WebhookURL:     server.URL,
			WebhookSecret:  secret,
			Enabled:        true,
			RetryPolicy:    event.DefaultRetryPolicy,
		}}, nil).
		Times(1)

	worker := NewWebhookDeliveryWorker(slog.Default(), repo, nil, 2*time.Second)
	worker.Deliver(context.Background(), evt)

	req.Equal(Sign(gotBody, secret), gotSignature)

	var delivered event.StoredEvent
	req.NoError(json.Unmarshal(gotBody, &delivered))
	req.Equal(evt.ID, delivered.ID)
	req.EqualValues(1, delivered.Version)

	token, err := jwt.ParseWithClaims(
		gotBearer[len("Bearer "):],
		&deliveryClaims{},
		func(t *jwt.Token) (any, error) { return []byte(secret), nil },
	)
	req.NoError(err)
	claims := token.Claims.(*deliveryClaims)
	req.Equal(evt.ID.String(), claims.EventID)
	req.Equal("org-1", claims.OrganizationID)
	req.Equal("inbox-lab", claims.Issuer)
}

func TestWebhookDelivery_RetriesUntilSuccess(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := mocks.NewMockISubscriptionRepository(ctrl)
	repo.EXPECT().
		ListByOrganization("org-1").
		Return([]event.Subscription{{
			OrganizationID: "org-1",
			Name:           "flaky",
			WebhookURL:     server.URL,
			WebhookSecret:  "s",
			Enabled:        true,
			RetryPolicy:    event.RetryPolicy{MaxRetries: 3, Delay: 10 * time.Millisecond},
		}}, nil).
		Times(1)

	worker := NewWebhookDeliveryWorker(slog.Default(), repo, nil, 2*time.Second)
	worker.Deliver(context.Background(), storedEvent("org-1"))

	req.EqualValues(3, attempts.Load())
}

func TestWebhookDelivery_GivesUpAfterMaxRetries(t *testing.T) {
	req := require.New(t)

	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sub := event.Subscription{
		OrganizationID: "org-1",
		Name:           "dead",
		WebhookURL:     server.URL,
		WebhookSecret:  "s",
		Enabled:        true,
		RetryPolicy:    event.RetryPolicy{MaxRetries: 2, Delay: 5 * time.Millisecond},
	}
	evt := storedEvent("org-1")
	body, err := json.Marshal(evt)
	req.NoError(err)

	worker := NewWebhookDeliveryWorker(slog.Default(), nil, nil, 2*time.Second)
	err = worker.deliverWithRetry(context.Background(), sub, evt, body)

	req.ErrorIs(err, errors.ErrDeliveryExhausted)
	req.EqualValues(3, attempts.Load())
}

func TestWebhookDelivery_SkipsDisabledAndMismatched(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var attempts atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := mocks.NewMockISubscriptionRepository(ctrl)
	repo.EXPECT().
		ListByOrganization("org-1").
		Return([]event.Subscription{
			{
				OrganizationID: "org-1",
				Name:           "disabled",
				WebhookURL:     server.URL,
				Enabled:        false,
			},
			{
				OrganizationID: "org-1",
				Name:           "other-types",
				EventTypes:     []string{event.TypeContactUpdated},
				WebhookURL:     server.URL,
				Enabled:        true,
			},
		}, nil).
		Times(1)

	worker := NewWebhookDeliveryWorker(slog.Default(), repo, nil, 2*time.Second)
	worker.Deliver(context.Background(), storedEvent("org-1"))

	req.EqualValues(0, attempts.Load())
}

func TestWebhookDelivery_RunDrainsQueue(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	delivered := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	repo := mocks.NewMockISubscriptionRepository(ctrl)
	repo.EXPECT().
		ListByOrganization("org-1").
		Return([]event.Subscription{{
			OrganizationID: "org-1",
			Name:           "crm",
			WebhookURL:     server.URL,
			WebhookSecret:  "s",
			Enabled:        true,
			RetryPolicy:    event.DefaultRetryPolicy,
		}}, nil).
		Times(1)

	deliveries := make(chan event.StoredEvent, 4)
	worker := NewWebhookDeliveryWorker(slog.Default(), repo, deliveries, 2*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	deliveries <- storedEvent("org-1")

	select {
	case <-delivered:
	case <-time.After(time.Second):
		req.Fail("Event from the queue should have been delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Worker should stop when its context is canceled")
	}
}
