package mq

import (
	"context"
	"log/slog"

	"trainer-booking/internal/usecase/shared"
)

// LogPublisher writes events to the log when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	slog.InfoContext(ctx, "event published",
		slog.Int64("id", msg.ID),
		slog.String("kind", msg.Kind),
		slog.String("topic", msg.Topic),
		slog.String("payload", string(msg.Payload)))
	return nil
}

func (LogPublisher) Close() error { return nil }
