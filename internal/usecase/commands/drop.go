package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/metrics"
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const (
	stepRefundIssued       = "refund_issued"
	stepRefundRecord       = "refund_record"
	stepArchive            = "archive"
	stepReleaseParticipant = "release_participants"
	stepDeleteLiveRow      = "delete_live_row"
)

type DropInput struct {
	BookingID  uuid.UUID
	Percentage int
	Reason     string
}

type DropCommands interface {
	// Drop ends a started booking early, issues the refund and archives it.
	// The booker or the trainer may drop.
	Drop(ctx context.Context, actor shared.Actor, in DropInput) (*queries.RefundView, error)
}

type dropUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway RefundGateway
	clock   clock.Clock
}

func NewDropUseCase(uow shared.UnitOfWork, gateway RefundGateway, clk clock.Clock) DropCommands {
	return &dropUseCaseImpl{uow: uow, gateway: gateway, clock: clk}
}

func (uc *dropUseCaseImpl) Drop(ctx context.Context, actor shared.Actor, in DropInput) (view *queries.RefundView, err error) {
	ctx, span := startSpan(ctx, "DropCommands.Drop",
		attribute.String("booking.id", in.BookingID.String()),
		attribute.Int("refund.percentage", in.Percentage),
	)
	defer func() { endSpan(span, err) }()

	pct, err := refund.NewPercentage(in.Percentage)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	now := uc.clock.Now()
	rec, err := uc.claim(ctx, actor, in, pct, now)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("refund.id", rec.ID))

	issued := false
	if rec.IssuesMoney() {
		err = uc.gateway.Refund(ctx, RefundInstruction{
			IdempotencyKey: rec.IdempotencyKey(),
			BookingID:      rec.BookingID,
			PaymentID:      rec.PaymentID,
			Amount:         rec.Amount,
		})
		if err != nil {
			uc.release(ctx, rec)
			return nil, errs.Mark(errs.Wrap(err, "refund gateway"), ErrRefundFailed)
		}
		issued = true
	}

	var dropped *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		live, derr := lockBooking(ctx, tx, in.BookingID)
		if derr != nil {
			return derr
		}
		if derr = live.Drop(in.Reason, now); derr != nil {
			return derr
		}
		if derr = tx.Refunds().MarkIssued(ctx, rec.ID); derr != nil {
			return derr
		}
		if derr = releaseParticipant(ctx, tx, live.SessionKeys(), live.BookerID()); derr != nil {
			return derr
		}
		if _, derr = archive(ctx, tx, live, now); derr != nil {
			return derr
		}
		dropped = live
		return enqueueBookingEvent(ctx, tx, live, rec.ID, now)
	})
	if err != nil {
		if !issued {
			uc.release(ctx, rec)
			return nil, err
		}
		metrics.PartialFailures.Inc()
		pf := &PartialFailureError{
			BookingID: rec.BookingID,
			RefundID:  rec.ID,
			Completed: []string{stepRefundIssued},
			Failed:    []string{stepRefundRecord, stepReleaseParticipant, stepArchive, stepDeleteLiveRow},
			Cause:     err,
		}
		slog.ErrorContext(ctx, "drop left partially applied",
			slog.String("booking_id", pf.BookingID.String()),
			slog.String("refund_id", pf.RefundID),
			slog.Any("completed", pf.Completed),
			slog.Any("failed", pf.Failed),
			slog.Any("error", err),
		)
		return nil, pf
	}

	rec.Status = refund.StatusIssued
	countTransition(dropped.Phase())
	metrics.RefundsIssued.WithLabelValues(strconv.Itoa(pct.Int())).Inc()
	return queries.NewRefundView(rec)
}

// claim locks the booking and stores a pending refund for it. Only one claim
// per booking can exist, so a concurrent drop stops here before any money moves.
func (uc *dropUseCaseImpl) claim(ctx context.Context, actor shared.Actor, in DropInput, pct refund.Percentage, now time.Time) (*refund.Record, error) {
	var rec *refund.Record
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, in.BookingID)
		if err != nil {
			return err
		}
		if !actor.IsEither(b.BookerID(), b.TrainerID()) {
			return ErrForbidden
		}
		if err = b.CheckDrop(in.Reason); err != nil {
			return markDomain(err)
		}
		if err = b.Drop(in.Reason, now); err != nil {
			return markDomain(err)
		}
		if rec, err = refund.NewRecord(b, pct, now); err != nil {
			return err
		}
		if err = tx.Refunds().Create(ctx, rec); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDropInProgress)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// release drops a pending claim so the booking can be dropped again.
func (uc *dropUseCaseImpl) release(ctx context.Context, rec *refund.Record) {
	ctx = context.WithoutCancel(ctx)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Refunds().Release(ctx, rec.ID)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to release refund claim",
			slog.String("booking_id", rec.BookingID.String()),
			slog.String("refund_id", rec.ID),
			slog.Any("error", err),
		)
	}
}

func mapBookingErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrBookingNotFound)
	}
	return err
}
