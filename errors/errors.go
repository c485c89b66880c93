package errors

import "fmt"

var (
	// ErrPersistence wraps any storage failure. Callers must not assume
	// the write happened when they see it.
	ErrPersistence = fmt.Errorf("event persistence failed")
	// ErrVersionConflict is returned when concurrent appenders raced on the
	// same aggregate and the bounded retry was exhausted.
	ErrVersionConflict      = fmt.Errorf("aggregate version conflict")
	ErrMissingField         = fmt.Errorf("missing required event field")
	ErrInvalidAggregateType = fmt.Errorf("unknown aggregate type")
	ErrSubscriptionNotFound = fmt.Errorf("subscription not found")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
	ErrDeliveryExhausted    = fmt.Errorf("webhook delivery retries exhausted")
)
