package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"inbox-lab/domain/event"
	"inbox-lab/eventbus"
	"inbox-lab/moderation"
	"inbox-lab/repositories"
	"inbox-lab/runtime/workers"
	"inbox-lab/sink"
)

var messageEventTypes = []string{event.TypeMessageReceived, event.TypeMessageCreated}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so that
// every defer (database and index cleanup) executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Search index (Bluge)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = writer.Close()
	}()

	// 4. Repositories & Bus
	store := repositories.NewEventRepository(db, log)
	subscriptions := repositories.NewSubscriptionRepository(db)
	bus := eventbus.New(store, log, eventbus.WithSinkTimeout(config.SinkTimeout))

	// 5. Sinks
	deliveries := make(chan event.StoredEvent, config.DeliveryQueueSize)
	bus.Subscribe(event.Wildcard, sink.NewWebhookSink(log, deliveries))
	bus.Subscribe(event.Wildcard, sink.NewSnapshotSink(store, log))
	bus.SubscribeMany(messageEventTypes, sink.NewLanguageSink(log))
	bus.SubscribeMany(messageEventTypes, sink.NewSearchSink(writer, log))

	if config.FlaggedTerms != "" {
		moderator, err := moderation.NewModerator(
			strings.Split(config.FlaggedTerms, ","),
			config.ModerationCharReplacement,
		)
		if err != nil {
			return fmt.Errorf("moderation setup failed: %w", err)
		}
		bus.SubscribeMany(messageEventTypes, sink.NewModerationSink(&moderator, log))
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 7. Background workers under supervision
	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewWebhookDeliveryWorker(log, subscriptions, deliveries, config.WebhookTimeout),
		workers.NewTelemetryWorker(log, store, config.TelemetryInterval),
	)

	log.Info("Inbox daemon started", "event_types", bus.RegisteredEventTypes())
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}
