package commands

import (
	"context"
	"encoding/json"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/infra/metrics"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const BookingTopic = "booking"

var tracer = otel.Tracer("trainer-booking/usecase/commands")

// BookingEvent is the outbox payload for every lifecycle transition.
type BookingEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	BookerID   uuid.UUID `json:"booker_id"`
	TrainerID  uuid.UUID `json:"trainer_id"`
	Status     string    `json:"status"`
	Phase      string    `json:"phase"`
	Paid       bool      `json:"paid"`
	SessionIDs []string  `json:"session_ids"`
	Reason     string    `json:"reason,omitempty"`
	RefundID   string    `json:"refund_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func EventKind(phase booking.Phase) string {
	return BookingTopic + "." + phase.String()
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, b *booking.Booking, refundID string, at time.Time) error {
	snap := b.Snapshot()
	payload, err := json.Marshal(BookingEvent{
		BookingID:  snap.ID,
		BookerID:   snap.BookerID,
		TrainerID:  snap.TrainerID,
		Status:     snap.Status().String(),
		Phase:      snap.Phase.String(),
		Paid:       snap.Paid(),
		SessionIDs: snap.SessionIDs,
		Reason:     snap.Reason,
		RefundID:   refundID,
		OccurredAt: at,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return tx.Outbox().Enqueue(ctx, EventKind(snap.Phase), BookingTopic, payload, at)
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan records err on the span and closes it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func countTransition(phase booking.Phase) {
	metrics.BookingTransitions.WithLabelValues(phase.String()).Inc()
}
