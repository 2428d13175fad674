package gateway

import (
	"context"
	"log/slog"

	"trainer-booking/internal/usecase/commands"
)

// Noop accepts every refund without moving money.
type Noop struct{}

func (Noop) Refund(ctx context.Context, in commands.RefundInstruction) error {
	slog.InfoContext(ctx, "refund recorded without gateway",
		slog.String("booking_id", in.BookingID.String()),
		slog.String("idempotency_key", in.IdempotencyKey),
		slog.String("amount", in.Amount.String()))
	return nil
}
