package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra/metrics"
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/pkg/patch"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateBookingInput struct {
	BookerID      uuid.UUID
	TrainerID     uuid.UUID
	SessionIDs    []string
	DurationWeeks int
	TotalPrice    string
}

// PatchInput drives the generic status patch. CancelAt defaults to now.
type PatchInput struct {
	Status   string
	Reason   string
	CancelAt *time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*queries.BookingView, error)
	Accept(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
	Reject(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*queries.BookingView, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string, cancelAt *time.Time) (*queries.BookingView, error)
	Pay(ctx context.Context, actor shared.Actor, id uuid.UUID, paymentID string) (*queries.BookingView, error)
	SetStart(ctx context.Context, actor shared.Actor, id uuid.UUID, startAt time.Time) (*queries.BookingView, error)
	End(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error)
	// Clear deletes the live row of an Ended or Expired booking after making sure it is archived.
	Clear(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	Patch(ctx context.Context, actor shared.Actor, id uuid.UUID, in PatchInput) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	expiry ExpiryCommands
	clock  clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, expiry ExpiryCommands, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, expiry: expiry, clock: clk}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, actor shared.Actor, in CreateBookingInput) (*queries.BookingView, error) {
	if !actor.Is(in.BookerID) {
		return nil, ErrForbidden
	}
	price, err := money.ParsePrice(in.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	now := uc.clock.Now()
	b, err := booking.NewBooking(uuid.Nil, in.BookerID, in.TrainerID, in.SessionIDs, in.DurationWeeks, price, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	ctx, span := startSpan(ctx, "BookingCommands.Create", attribute.String("booking.id", b.ID().String()))
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := checkSessions(ctx, tx.Reads(), b); derr != nil {
			return derr
		}
		if derr := tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}
		return enqueueBookingEvent(ctx, tx, b, "", now)
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	countTransition(b.Phase())
	return uc.view(b)
}

// Accept re-validates the sessions; on failure the booking stays Pending.
func (uc *bookingUseCaseImpl) Accept(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, "BookingCommands.Accept", id, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !actor.Is(b.TrainerID()) {
			return ErrForbidden
		}
		if err := b.Accept(now); err != nil {
			return err
		}
		if err := checkSessions(ctx, tx.Reads(), b); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, b)
	})
}

func (uc *bookingUseCaseImpl) Reject(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string) (*queries.BookingView, error) {
	return uc.transition(ctx, "BookingCommands.Reject", id, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !actor.Is(b.TrainerID()) {
			return ErrForbidden
		}
		if err := b.Reject(reason, now); err != nil {
			return markDomain(err)
		}
		_, err := archive(ctx, tx, b, now)
		return err
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, reason string, cancelAt *time.Time) (*queries.BookingView, error) {
	return uc.transition(ctx, "BookingCommands.Cancel", id, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !actor.IsEither(b.BookerID(), b.TrainerID()) {
			return ErrForbidden
		}
		if err := b.Cancel(reason, patch.Coalesce(cancelAt, now)); err != nil {
			return markDomain(err)
		}
		if err := releaseUnpaid(ctx, tx, b.SessionKeys(), b.BookerID()); err != nil {
			return err
		}
		_, err := archive(ctx, tx, b, now)
		return err
	})
}

// Pay commits capacity. A full session leaves the booking Accepted and unpaid.
func (uc *bookingUseCaseImpl) Pay(ctx context.Context, actor shared.Actor, id uuid.UUID, paymentID string) (*queries.BookingView, error) {
	return uc.transition(ctx, "BookingCommands.Pay", id, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !actor.Is(b.BookerID()) {
			return ErrForbidden
		}
		if err := b.Pay(paymentID, now); err != nil {
			return markDomain(err)
		}
		sessions, err := lockSessions(ctx, tx, b.SessionKeys())
		if err != nil {
			return err
		}
		if err = requireConfigured(sessions); err != nil {
			return err
		}
		if held := schedule.PaidSeats(sessions, b.BookerID()); len(held) > 0 {
			return &SessionUnavailableError{
				InvalidSessionIDs: held,
				Reason:            fmt.Sprintf("Session unavailable (%d already booked), session id: %s", len(held), strings.Join(held, ", ")),
			}
		}
		if err = schedule.ReserveAll(sessions, b.BookerID()); err != nil {
			if errors.Is(err, schedule.ErrCapacityExceeded) {
				metrics.CapacityRejections.Inc()
			}
			return err
		}
		if err = schedule.MarkAllPaid(sessions, b.BookerID(), paymentID); err != nil {
			return err
		}
		if err = saveSessions(ctx, tx, sessions); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, b)
	})
}

func (uc *bookingUseCaseImpl) SetStart(ctx context.Context, actor shared.Actor, id uuid.UUID, startAt time.Time) (*queries.BookingView, error) {
	return uc.transition(ctx, "BookingCommands.SetStart", id, func(ctx context.Context, tx shared.Tx, b *booking.Booking, _ time.Time) error {
		if !actor.Is(b.TrainerID()) {
			return ErrForbidden
		}
		if err := b.Start(startAt); err != nil {
			return markDomain(err)
		}
		return tx.Bookings().Update(ctx, b)
	})
}

func (uc *bookingUseCaseImpl) End(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.BookingView, error) {
	return uc.transition(ctx, "BookingCommands.End", id, func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
		if !actor.Is(b.TrainerID()) {
			return ErrForbidden
		}
		return endBooking(ctx, tx, b, now)
	})
}

func (uc *bookingUseCaseImpl) Clear(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if !actor.IsEither(b.BookerID(), b.TrainerID()) {
			return ErrForbidden
		}
		switch b.Phase() {
		case booking.PhaseEnded, booking.PhaseExpired:
		default:
			return ErrNotClearable
		}
		if _, err = archive(ctx, tx, b, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Bookings().Delete(ctx, id)
	})
}

func (uc *bookingUseCaseImpl) Patch(ctx context.Context, actor shared.Actor, id uuid.UUID, in PatchInput) (*queries.BookingView, error) {
	status, ok := booking.ParseStatus(in.Status)
	if !ok {
		return nil, errs.Validation("unknown status %q", in.Status)
	}
	switch status {
	case booking.StatusAccepted:
		return uc.Accept(ctx, actor, id)
	case booking.StatusRejected:
		return uc.Reject(ctx, actor, id, in.Reason)
	case booking.StatusCancelled:
		return uc.Cancel(ctx, actor, id, in.Reason, in.CancelAt)
	case booking.StatusEnded:
		return uc.End(ctx, actor, id)
	case booking.StatusExpired:
		return uc.expiry.Expire(ctx, actor, id)
	}
	return nil, ErrUnsupportedPatch
}

type mutation func(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error

// transition runs one locked read-modify-write of a booking and records its event.
func (uc *bookingUseCaseImpl) transition(ctx context.Context, name string, id uuid.UUID, fn mutation) (*queries.BookingView, error) {
	ctx, span := startSpan(ctx, name, attribute.String("booking.id", id.String()))
	var result *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := lockBooking(ctx, tx, id)
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()
		if derr = fn(ctx, tx, b, now); derr != nil {
			return derr
		}
		result = b
		return enqueueBookingEvent(ctx, tx, b, "", now)
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	countTransition(result.Phase())
	return uc.view(result)
}

func (uc *bookingUseCaseImpl) view(b *booking.Booking) (*queries.BookingView, error) {
	snap := b.Snapshot()
	return queries.NewBookingView(&snap, uc.clock.Now())
}

func lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().LockByID(ctx, id)
	if err != nil {
		return nil, mapBookingErr(err)
	}
	return b, nil
}

// checkSessions runs the validator rules against the current store.
func checkSessions(ctx context.Context, reads shared.CommandReads, b *booking.Booking) error {
	keys := b.SessionKeys()
	found, err := reads.SessionsByKeys(ctx, keys)
	if err != nil {
		return err
	}
	bookerID := b.BookerID()
	res := queries.EvaluateSessions(b.TrainerID(), keys, found, &bookerID)
	if !res.Valid {
		return &SessionUnavailableError{InvalidSessionIDs: res.InvalidSessionIDs, Reason: res.Reason}
	}
	return nil
}

func requireConfigured(sessions []*schedule.Session) error {
	var missing []string
	for _, s := range sessions {
		if !s.IsConfigured() {
			missing = append(missing, s.ID())
		}
	}
	if len(missing) > 0 {
		return &SessionUnavailableError{InvalidSessionIDs: missing}
	}
	return nil
}

func endBooking(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	if err := b.End(now); err != nil {
		return err
	}
	if err := tx.Bookings().Update(ctx, b); err != nil {
		return err
	}
	if err := releaseParticipant(ctx, tx, b.SessionKeys(), b.BookerID()); err != nil {
		return err
	}
	_, err := archive(ctx, tx, b, now)
	return err
}

// markDomain tags input-shaped domain errors as validation errors; transition errors pass through.
func markDomain(err error) error {
	switch {
	case errors.Is(err, booking.ErrReasonRequired),
		errors.Is(err, booking.ErrPaymentIDRequired),
		errors.Is(err, booking.ErrStartBeforeBooking):
		return errs.Mark(err, errs.ErrValidation)
	}
	return err
}
