package readstore

import (
	"context"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"
	"trainer-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Bookings, error)
	ListPendingBookedBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingBookedBeforeParams) ([]uuid.UUID, error)
	ListStartedEndingBefore(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStartedEndingBeforeParams) ([]uuid.UUID, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Snapshot, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	snap, err := converter.SnapshotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return snap, nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*booking.Snapshot, error) {
	phases := make([]string, 0, len(filter.Phases))
	for _, p := range filter.Phases {
		phases = append(phases, p.String())
	}
	params := sqlc.ListBookingsParams{
		BookerID:  pgconv.UUIDPtrToPgtype(filter.BookerID),
		TrainerID: pgconv.UUIDPtrToPgtype(filter.TrainerID),
		Phases:    phases,
		RowLimit:  filter.Limit,
	}
	if filter.After != nil {
		params.AfterBookedAt = pgconv.TimeToPgtype(filter.After.At)
		params.AfterID = pgconv.UUIDToPgtype(filter.After.ID)
	}

	rows, err := r.queries.ListBookings(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	out := make([]*booking.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := converter.SnapshotFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
		}
		out = append(out, snap)
	}
	return out, nil
}

// FindBooking loads the aggregate for the write side.
func (r *BookingReadStore) FindBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingReadStore) PendingBookedBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListPendingBookedBefore(ctx, r.db, sqlc.ListPendingBookedBeforeParams{BookedAt: pgconv.TimeToPgtype(cutoff), Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending bookings", err)
	}
	return ids, nil
}

func (r *BookingReadStore) StartedEndingBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListStartedEndingBefore(ctx, r.db, sqlc.ListStartedEndingBeforeParams{EndDate: pgconv.TimeToPgtype(cutoff), Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list finished bookings", err)
	}
	return ids, nil
}
