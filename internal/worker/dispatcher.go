package worker

import (
	"context"
	"log/slog"
	"time"

	"trainer-booking/internal/infra/metrics"
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/usecase/shared"

	"github.com/avast/retry-go"
)

type EventPublisher interface {
	Publish(ctx context.Context, msg shared.OutboxMessage) error
}

// OutboxDispatcher moves queued booking events to the broker.
type OutboxDispatcher struct {
	store     shared.OutboxStore
	publisher EventPublisher
	clock     clock.Clock
	interval  time.Duration
	batch     int32
}

func NewOutboxDispatcher(store shared.OutboxStore, publisher EventPublisher, clk clock.Clock, interval time.Duration, batch int32) *OutboxDispatcher {
	return &OutboxDispatcher{
		store:     store,
		publisher: publisher,
		clock:     clk,
		interval:  interval,
		batch:     batch,
	}
}

func (d *OutboxDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	slog.Info("outbox dispatcher started", slog.Duration("interval", d.interval))
	for {
		if _, err := d.Tick(ctx); err != nil {
			slog.ErrorContext(ctx, "outbox dispatch failed", slog.Any("error", err))
		}
		select {
		case <-ctx.Done():
			slog.Info("outbox dispatcher stopped")
			return
		case <-ticker.C:
		}
	}
}

func (d *OutboxDispatcher) Tick(ctx context.Context) (shared.DispatchResult, error) {
	res, err := d.store.Dispatch(ctx, d.clock.Now(), d.batch, d.publish)
	if err != nil {
		return res, err
	}
	if res.Published > 0 || res.Retried > 0 {
		slog.InfoContext(ctx, "outbox dispatched",
			slog.Int("published", res.Published),
			slog.Int("retried", res.Retried))
	}
	return res, nil
}

// publish retries transient broker errors a few times before the store reschedules the message.
func (d *OutboxDispatcher) publish(ctx context.Context, msg shared.OutboxMessage) error {
	err := retry.Do(
		func() error {
			return d.publisher.Publish(ctx, msg)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(100*time.Millisecond),
		retry.MaxDelay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		metrics.OutboxPublished.WithLabelValues("error").Inc()
		slog.WarnContext(ctx, "publish failed",
			slog.Int64("id", msg.ID),
			slog.String("kind", msg.Kind),
			slog.Any("error", err))
		return err
	}
	metrics.OutboxPublished.WithLabelValues("ok").Inc()
	return nil
}
