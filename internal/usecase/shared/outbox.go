package shared

import (
	"context"
	"time"
)

// OutboxMessage is one queued domain event awaiting publication.
type OutboxMessage struct {
	ID       int64
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}

type OutboxHandler func(ctx context.Context, msg OutboxMessage) error

type DispatchResult struct {
	Published int
	Retried   int
}

type OutboxStore interface {
	// Dispatch claims messages due at now and records each handler outcome
	// in the same transaction, so a message is never claimed twice concurrently.
	Dispatch(ctx context.Context, now time.Time, limit int32, handle OutboxHandler) (DispatchResult, error)
}

// OutboxRetryPolicy schedules a failed message again with exponential backoff.
type OutboxRetryPolicy struct {
	MaxAttempts int32
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultOutboxRetryPolicy() OutboxRetryPolicy {
	return OutboxRetryPolicy{MaxAttempts: 10, BaseDelay: time.Second, MaxDelay: 5 * time.Minute}
}

// NextRunAt returns when a message that has failed attempts times runs again.
func (p OutboxRetryPolicy) NextRunAt(now time.Time, attempts int32) time.Time {
	delay := p.BaseDelay
	for i := int32(1); i < attempts; i++ {
		delay *= 2
		if delay >= p.MaxDelay {
			delay = p.MaxDelay
			break
		}
	}
	return now.Add(delay)
}

// Exhausted reports whether a message that has failed attempts times is given up on.
func (p OutboxRetryPolicy) Exhausted(attempts int32) bool {
	return p.MaxAttempts > 0 && attempts >= p.MaxAttempts
}
