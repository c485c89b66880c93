package main

import "time"

type Config struct {
	BadgerFilepath            string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath             string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel                  string        `env:"LOG_LEVEL,required=true"`
	SinkTimeout               time.Duration `env:"SINK_TIMEOUT,required=true"`
	DeliveryQueueSize         int           `env:"DELIVERY_QUEUE_SIZE,required=true"`
	WebhookTimeout            time.Duration `env:"WEBHOOK_TIMEOUT,required=true"`
	TelemetryInterval         time.Duration `env:"TELEMETRY_INTERVAL,required=true"`
	FlaggedTerms              string        `env:"FLAGGED_TERMS"`
	ModerationCharReplacement rune          `env:"MODERATION_CHARACTER_REPLACEMENT,default=42"`
}
