package repository

import (
	"context"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.LockBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingState(ctx, r.db, converter.BookingToUpdateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if n == 0 {
		return infra.NotFound("booking not found")
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.DeleteBooking(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	return nil
}
