package queries

import (
	"context"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/timepolicy"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/pkg/clock"
	"trainer-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Snapshot, error)
	List(ctx context.Context, filter BookingFilter) ([]*booking.Snapshot, error)
}

// ExpiryObserver receives ids of bookings a read classified as expired but
// that are still stored as Pending. Implementations must not block.
type ExpiryObserver interface {
	Observe(ids ...uuid.UUID)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, bookerID, trainerID *uuid.UUID, status string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo     BookingReadStore
	observer ExpiryObserver
	clock    clock.Clock
}

func NewBookingQueries(repo BookingReadStore, observer ExpiryObserver, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, observer: observer, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	snap, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	view, err := NewBookingView(snap, q.clock.Now())
	if err != nil {
		return nil, err
	}
	q.notify(view)
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, bookerID, trainerID *uuid.UUID, status string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if bookerID == nil && trainerID == nil {
		return nil, nil, ErrFilterRequired
	}
	var want booking.Status
	var phases []booking.Phase
	if status != "" {
		st, ok := booking.ParseStatus(status)
		if !ok {
			return nil, nil, ErrInvalidStatus
		}
		want = st
		phases = st.Phases()
		// Stored Pending rows may classify as Expired at read time.
		if st == booking.StatusExpired {
			phases = append(phases, booking.PhasePending)
		}
	}
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	rows, err := q.repo.List(ctx, BookingFilter{
		BookerID:  bookerID,
		TrainerID: trainerID,
		Phases:    phases,
		After:     after,
		Limit:     int32(limit + 1), // #nosec G115 -- bounded by MaxListLimit
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.BookedAt, last.ID)}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	views := make([]*BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := NewBookingView(row, now)
		if err != nil {
			return nil, nil, err
		}
		q.notify(view)
		if want != "" && view.Status != want.String() {
			continue
		}
		views = append(views, view)
	}
	return views, next, nil
}

func (q *bookingQueriesImpl) notify(view *BookingView) {
	if view.ExpiryPending && q.observer != nil {
		q.observer.Observe(view.ID)
	}
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Price{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(money.Price).String(), nil
			},
		},
	},
}

// NewBookingView projects a stored snapshot, classifying stale Pending rows as Expired.
func NewBookingView(snap *booking.Snapshot, now time.Time) (*BookingView, error) {
	view := &BookingView{}
	if err := copier.CopyWithOption(view, snap, copyOption); err != nil {
		return nil, errs.Wrap(err, "failed to map booking view")
	}
	view.Status = snap.Status().String()
	view.Paid = snap.Paid()

	if snap.Phase == booking.PhasePending {
		expiresAt := timepolicy.ExpiresAt(snap.BookedAt)
		view.ExpiresAt = &expiresAt
		remaining := timepolicy.RemainingTime(snap.BookedAt, now)
		view.RemainingTime = remaining.String()
		if remaining.Expired {
			view.Status = booking.StatusExpired.String()
			view.ExpiryPending = true
		}
	}
	return view, nil
}
