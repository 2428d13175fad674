package commands

import (
	"context"
	"log/slog"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/timepolicy"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/metrics"
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"

	"github.com/avast/retry-go"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type RetryConfig struct {
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{Attempts: 3, Delay: 50 * time.Millisecond, MaxDelay: time.Second}
}

type ExpiryCommands interface {
	// Expire moves a Pending booking past its window to Expired on request.
	Expire(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
	// ObserveExpiry writes back bookings a read already classified as expired.
	// Ids that are gone or no longer expirable are skipped. It returns how many were written.
	ObserveExpiry(ctx context.Context, ids ...uuid.UUID) (int, error)
	// SweepExpired expires up to limit stale Pending bookings.
	SweepExpired(ctx context.Context, limit int32) (int, error)
	// AutoEnd ends up to limit Started bookings whose end date has passed.
	AutoEnd(ctx context.Context, limit int32) (int, error)
}

type expiryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	retry RetryConfig
}

func NewExpiryUseCase(uow shared.UnitOfWork, clk clock.Clock, rc RetryConfig) ExpiryCommands {
	return &expiryUseCaseImpl{uow: uow, clock: clk, retry: rc}
}

func (uc *expiryUseCaseImpl) Expire(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	ctx, span := startSpan(ctx, "ExpiryCommands.Expire")
	var result *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := lockBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if !actor.IsEither(b.BookerID(), b.TrainerID()) {
			return ErrForbidden
		}
		if derr = expireBooking(ctx, tx, b, uc.clock.Now()); derr != nil {
			if errors.Is(derr, booking.ErrNotExpired) {
				return errs.Mark(derr, booking.ErrInvalidTransition)
			}
			return derr
		}
		result = b
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	metrics.ExpiredBookings.Inc()
	countTransition(result.Phase())
	snap := result.Snapshot()
	return queries.NewBookingView(&snap, uc.clock.Now())
}

func (uc *expiryUseCaseImpl) ObserveExpiry(ctx context.Context, ids ...uuid.UUID) (int, error) {
	written := 0
	var errList error
	for _, id := range ids {
		ok, err := uc.expireWithRetry(ctx, id)
		if err != nil {
			errList = errors.CombineErrors(errList, err)
			continue
		}
		if ok {
			written++
		}
	}
	return written, errList
}

func (uc *expiryUseCaseImpl) SweepExpired(ctx context.Context, limit int32) (int, error) {
	cutoff := uc.clock.Now().Add(-timepolicy.ExpiryWindow)
	ids, err := uc.uow.CommandReads().PendingBookedBefore(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}
	return uc.ObserveExpiry(ctx, ids...)
}

func (uc *expiryUseCaseImpl) AutoEnd(ctx context.Context, limit int32) (int, error) {
	ids, err := uc.uow.CommandReads().StartedEndingBefore(ctx, uc.clock.Now(), limit)
	if err != nil {
		return 0, err
	}
	ended := 0
	var errList error
	for _, id := range ids {
		var done bool
		err := uc.withRetry(ctx, func() error {
			var derr error
			done, derr = uc.endOne(ctx, id)
			return derr
		})
		if err != nil {
			errList = errors.CombineErrors(errList, err)
			continue
		}
		if done {
			ended++
		}
	}
	return ended, errList
}

func (uc *expiryUseCaseImpl) expireWithRetry(ctx context.Context, id uuid.UUID) (bool, error) {
	var done bool
	err := uc.withRetry(ctx, func() error {
		var derr error
		done, derr = uc.expireOne(ctx, id)
		return derr
	})
	return done, err
}

func (uc *expiryUseCaseImpl) expireOne(ctx context.Context, id uuid.UUID) (bool, error) {
	done := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().LockByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return nil
			}
			return derr
		}
		now := uc.clock.Now()
		if !b.IsExpiredAt(now) {
			return nil
		}
		if derr = expireBooking(ctx, tx, b, now); derr != nil {
			return derr
		}
		done = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if done {
		metrics.ExpiredBookings.Inc()
		countTransition(booking.PhaseExpired)
		slog.InfoContext(ctx, "booking expired", slog.String("booking_id", id.String()))
	}
	return done, nil
}

func (uc *expiryUseCaseImpl) endOne(ctx context.Context, id uuid.UUID) (bool, error) {
	done := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().LockByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return nil
			}
			return derr
		}
		now := uc.clock.Now()
		if !b.ShouldEndAt(now) {
			return nil
		}
		if derr = endBooking(ctx, tx, b, now); derr != nil {
			return derr
		}
		done = true
		return enqueueBookingEvent(ctx, tx, b, "", now)
	})
	if err != nil {
		return false, err
	}
	if done {
		countTransition(booking.PhaseEnded)
		slog.InfoContext(ctx, "booking ended", slog.String("booking_id", id.String()))
	}
	return done, nil
}

// withRetry retries storage failures; domain refusals are returned at once.
func (uc *expiryUseCaseImpl) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(uc.retry.Attempts),
		retry.Delay(uc.retry.Delay),
		retry.MaxDelay(uc.retry.MaxDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, booking.ErrInvalidTransition) && !errors.Is(err, context.Canceled)
		}),
	)
}

func expireBooking(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	if err := b.Expire(now); err != nil {
		return err
	}
	if err := tx.Bookings().Update(ctx, b); err != nil {
		return err
	}
	if _, err := archive(ctx, tx, b, now); err != nil {
		return err
	}
	return enqueueBookingEvent(ctx, tx, b, "", now)
}
