package worker

import (
	"context"
	"log/slog"
	"time"

	"trainer-booking/internal/usecase/commands"
)

// ExpirySweeper periodically expires stale Pending bookings and ends Started
// bookings whose end date has passed.
type ExpirySweeper struct {
	expiry   commands.ExpiryCommands
	interval time.Duration
	batch    int32
}

func NewExpirySweeper(expiry commands.ExpiryCommands, interval time.Duration, batch int32) *ExpirySweeper {
	return &ExpirySweeper{expiry: expiry, interval: interval, batch: batch}
}

func (w *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("expiry sweeper started", slog.Duration("interval", w.interval))
	for {
		w.Tick(ctx)
		select {
		case <-ctx.Done():
			slog.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

// Tick runs one sweep. Errors are logged; the next tick retries.
func (w *ExpirySweeper) Tick(ctx context.Context) {
	expired, err := w.expiry.SweepExpired(ctx, w.batch)
	if err != nil {
		slog.ErrorContext(ctx, "expiry sweep failed", slog.Int("expired", expired), slog.Any("error", err))
	} else if expired > 0 {
		slog.InfoContext(ctx, "expiry sweep done", slog.Int("expired", expired))
	}

	ended, err := w.expiry.AutoEnd(ctx, w.batch)
	if err != nil {
		slog.ErrorContext(ctx, "auto end failed", slog.Int("ended", ended), slog.Any("error", err))
	} else if ended > 0 {
		slog.InfoContext(ctx, "auto end done", slog.Int("ended", ended))
	}
}
