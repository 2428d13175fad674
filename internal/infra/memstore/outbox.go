package memstore

import (
	"context"
	"log/slog"
	"time"

	"trainer-booking/internal/usecase/shared"
)

const (
	outboxPending   = "pending"
	outboxPublished = "published"
	outboxFailed    = "failed"
)

// OutboxStore dispatches events queued in a Store.
type OutboxStore struct {
	store  *Store
	policy shared.OutboxRetryPolicy
}

func NewOutboxStore(store *Store, policy shared.OutboxRetryPolicy) *OutboxStore {
	return &OutboxStore{store: store, policy: policy}
}

func (o *OutboxStore) Dispatch(ctx context.Context, now time.Time, limit int32, handle shared.OutboxHandler) (shared.DispatchResult, error) {
	o.store.mu.Lock()
	defer o.store.mu.Unlock()

	var result shared.DispatchResult
	rows := o.store.state.outbox
	for i := range rows {
		if limit > 0 && result.Published+result.Retried >= int(limit) {
			break
		}
		row := &rows[i]
		if row.status != outboxPending || row.msg.RunAt.After(now) {
			continue
		}
		if err := handle(ctx, row.msg); err != nil {
			row.msg.Attempts++
			row.lastError = err.Error()
			row.msg.RunAt = o.policy.NextRunAt(now, row.msg.Attempts)
			if o.policy.Exhausted(row.msg.Attempts) {
				row.status = outboxFailed
				slog.ErrorContext(ctx, "outbox event gave up",
					slog.Int64("id", row.msg.ID),
					slog.String("kind", row.msg.Kind),
					slog.Any("error", err))
			}
			result.Retried++
			continue
		}
		row.msg.Attempts++
		row.status = outboxPublished
		result.Published++
	}
	return result, nil
}

// Pending returns the messages not yet published, oldest first.
func (o *OutboxStore) Pending() []shared.OutboxMessage {
	o.store.mu.RLock()
	defer o.store.mu.RUnlock()
	var out []shared.OutboxMessage
	for _, row := range o.store.state.outbox {
		if row.status == outboxPending {
			out = append(out, row.msg)
		}
	}
	return out
}
