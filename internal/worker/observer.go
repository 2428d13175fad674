package worker

import (
	"context"
	"log/slog"

	"trainer-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// ExpiryObserver hands ids classified as expired at read time to a background
// write-back. Observe never blocks; ids that do not fit in the buffer are left
// for the sweeper.
type ExpiryObserver struct {
	expiry commands.ExpiryCommands
	ids    chan uuid.UUID
}

func NewExpiryObserver(expiry commands.ExpiryCommands, buffer int) *ExpiryObserver {
	if buffer <= 0 {
		buffer = 256
	}
	return &ExpiryObserver{expiry: expiry, ids: make(chan uuid.UUID, buffer)}
}

func (o *ExpiryObserver) Observe(ids ...uuid.UUID) {
	for _, id := range ids {
		select {
		case o.ids <- id:
		default:
			slog.Warn("expiry observer buffer full", slog.String("booking_id", id.String()))
		}
	}
}

func (o *ExpiryObserver) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-o.ids:
			batch := o.drain(id)
			n, err := o.expiry.ObserveExpiry(ctx, batch...)
			if err != nil {
				slog.ErrorContext(ctx, "expiry write-back failed", slog.Int("written", n), slog.Any("error", err))
				continue
			}
			if n > 0 {
				slog.DebugContext(ctx, "expiry written back", slog.Int("written", n))
			}
		}
	}
}

// drain collects whatever else is already queued, without duplicates.
func (o *ExpiryObserver) drain(first uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{first: true}
	batch := []uuid.UUID{first}
	for {
		select {
		case id := <-o.ids:
			if !seen[id] {
				seen[id] = true
				batch = append(batch, id)
			}
		default:
			return batch
		}
	}
}
