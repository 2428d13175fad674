package queries

import (
	"context"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/infra"

	"github.com/google/uuid"
)

type HistoryReadStore interface {
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.HistoryRecord, error)
	List(ctx context.Context, filter HistoryFilter) ([]*booking.HistoryRecord, error)
}

type RefundReadStore interface {
	FindByID(ctx context.Context, id string) (*refund.Record, error)
}

type HistoryQueries interface {
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*HistoryView, error)
	List(ctx context.Context, bookerID, trainerID *uuid.UUID, cursor *Cursor, limit int) ([]*HistoryView, *Cursor, error)
	GetRefund(ctx context.Context, refundID string) (*RefundView, error)
}

type historyQueriesImpl struct {
	history HistoryReadStore
	refunds RefundReadStore
}

func NewHistoryQueries(history HistoryReadStore, refunds RefundReadStore) HistoryQueries {
	return &historyQueriesImpl{history: history, refunds: refunds}
}

func (q *historyQueriesImpl) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*HistoryView, error) {
	rec, err := q.history.FindByBookingID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}
	return NewHistoryView(rec)
}

func (q *historyQueriesImpl) List(ctx context.Context, bookerID, trainerID *uuid.UUID, cursor *Cursor, limit int) ([]*HistoryView, *Cursor, error) {
	if bookerID == nil && trainerID == nil {
		return nil, nil, ErrFilterRequired
	}
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	rows, err := q.history.List(ctx, HistoryFilter{
		BookerID:  bookerID,
		TrainerID: trainerID,
		After:     after,
		Limit:     int32(limit + 1), // #nosec G115 -- bounded by MaxListLimit
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.ArchivedAt, last.Booking.ID)}
		rows = rows[:limit]
	}

	views := make([]*HistoryView, 0, len(rows))
	for _, row := range rows {
		view, err := NewHistoryView(row)
		if err != nil {
			return nil, nil, err
		}
		views = append(views, view)
	}
	return views, next, nil
}

func (q *historyQueriesImpl) GetRefund(ctx context.Context, refundID string) (*RefundView, error) {
	rec, err := q.refunds.FindByID(ctx, refundID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRefundNotFound
		}
		return nil, err
	}
	return NewRefundView(rec)
}

// NewHistoryView renders the archived snapshot as-is; no read-time expiry applies to history.
func NewHistoryView(rec *booking.HistoryRecord) (*HistoryView, error) {
	view, err := NewBookingView(&rec.Booking, rec.ArchivedAt)
	if err != nil {
		return nil, err
	}
	view.ExpiresAt = nil
	view.RemainingTime = ""
	view.ExpiryPending = false
	view.Status = rec.Booking.Status().String()
	return &HistoryView{BookingView: *view, ArchivedAt: rec.ArchivedAt}, nil
}

func NewRefundView(rec *refund.Record) (*RefundView, error) {
	hist, err := NewHistoryView(&booking.HistoryRecord{Booking: rec.Snapshot, ArchivedAt: rec.RefundedAt})
	if err != nil {
		return nil, err
	}
	return &RefundView{
		RefundID:              rec.ID,
		BookingID:             rec.BookingID,
		BookerID:              rec.BookerID,
		RefundedAt:            rec.RefundedAt,
		RefundPercentage:      rec.Percentage.Int(),
		RefundAmount:          rec.Amount.String(),
		PaymentID:             rec.PaymentID,
		Reason:                rec.Reason,
		SourceBookingSnapshot: hist.BookingView,
	}, nil
}
