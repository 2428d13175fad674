package commands

import (
	"context"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ArchiveCommands interface {
	// Archive is idempotent: re-archiving overwrites the history row, and a booking
	// whose live row is already gone returns its existing history.
	Archive(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) (*queries.HistoryView, error)
}

type archiveUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewArchiveUseCase(uow shared.UnitOfWork, clk clock.Clock) ArchiveCommands {
	return &archiveUseCaseImpl{uow: uow, clock: clk}
}

func (uc *archiveUseCaseImpl) Archive(ctx context.Context, actor shared.Actor, bookingID uuid.UUID) (*queries.HistoryView, error) {
	var rec *booking.HistoryRecord
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().LockByID(ctx, bookingID)
		if infra.IsKind(derr, infra.KindNotFound) {
			existing, herr := tx.Reads().HistoryByBookingID(ctx, bookingID)
			if herr != nil {
				if infra.IsKind(herr, infra.KindNotFound) {
					return ErrBookingNotFound
				}
				return herr
			}
			if !actor.IsEither(existing.Booking.BookerID, existing.Booking.TrainerID) {
				return ErrForbidden
			}
			rec = existing
			return nil
		}
		if derr != nil {
			return derr
		}
		if !actor.IsEither(b.BookerID(), b.TrainerID()) {
			return ErrForbidden
		}
		rec, derr = archive(ctx, tx, b, uc.clock.Now())
		return derr
	})
	if err != nil {
		return nil, err
	}
	return queries.NewHistoryView(rec)
}

// archive writes the history row and drops the live row when the terminal phase calls for it.
func archive(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) (*booking.HistoryRecord, error) {
	rec, err := booking.NewHistoryRecord(b, now)
	if err != nil {
		return nil, err
	}
	if err = tx.History().Upsert(ctx, rec); err != nil {
		return nil, err
	}
	if rec.RemovesLiveRow() {
		if err = tx.Bookings().Delete(ctx, b.ID()); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
