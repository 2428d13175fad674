package readstore

import (
	"context"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"
	"trainer-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryViewQueries interface {
	GetHistory(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.BookingHistory, error)
	ListHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHistoryParams) ([]sqlc.BookingHistory, error)
}

type HistoryReadStore struct {
	queries HistoryViewQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryViewQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{queries: queries, db: db}
}

func (r *HistoryReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.HistoryRecord, error) {
	row, err := r.queries.GetHistory(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("history record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get history record", err)
	}
	rec, err := converter.HistoryFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert history row", err, infra.KindDBFailure)
	}
	return rec, nil
}

func (r *HistoryReadStore) List(ctx context.Context, filter queries.HistoryFilter) ([]*booking.HistoryRecord, error) {
	params := sqlc.ListHistoryParams{
		BookerID:  pgconv.UUIDPtrToPgtype(filter.BookerID),
		TrainerID: pgconv.UUIDPtrToPgtype(filter.TrainerID),
		RowLimit:  filter.Limit,
	}
	if filter.After != nil {
		params.AfterArchivedAt = pgconv.TimeToPgtype(filter.After.At)
		params.AfterID = pgconv.UUIDToPgtype(filter.After.ID)
	}
	rows, err := r.queries.ListHistory(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking history", err)
	}
	out := make([]*booking.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := converter.HistoryFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert history row", err, infra.KindDBFailure)
		}
		out = append(out, rec)
	}
	return out, nil
}

type RefundViewQueries interface {
	GetRefund(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Refunds, error)
}

type RefundReadStore struct {
	queries RefundViewQueries
	db      sqlc.DBTX
}

func NewRefundReadStore(queries RefundViewQueries, db sqlc.DBTX) *RefundReadStore {
	return &RefundReadStore{queries: queries, db: db}
}

func (r *RefundReadStore) FindByID(ctx context.Context, id string) (*refund.Record, error) {
	row, err := r.queries.GetRefund(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("refund record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get refund record", err)
	}
	rec, err := converter.RefundFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert refund row", err, infra.KindDBFailure)
	}
	return rec, nil
}
