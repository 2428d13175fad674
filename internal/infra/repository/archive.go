package repository

import (
	"context"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"
)

type HistoryWriteQueries interface {
	UpsertHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertHistoryParams) error
}

type HistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *HistoryRepository {
	return &HistoryRepository{queries: queries, db: db}
}

func (r *HistoryRepository) Upsert(ctx context.Context, rec *booking.HistoryRecord) error {
	params, err := converter.HistoryToUpsertParams(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to convert history record", err, infra.KindDBFailure)
	}
	if err = r.queries.UpsertHistory(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to upsert booking history", err)
	}
	return nil
}

type RefundWriteQueries interface {
	CreateRefund(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRefundParams) error
	MarkRefundIssued(ctx context.Context, db sqlc.DBTX, id string) (int64, error)
	DeleteRefundClaim(ctx context.Context, db sqlc.DBTX, id string) (int64, error)
}

type RefundRepository struct {
	queries RefundWriteQueries
	db      sqlc.DBTX
}

func NewRefundRepository(queries RefundWriteQueries, db sqlc.DBTX) *RefundRepository {
	return &RefundRepository{queries: queries, db: db}
}

func (r *RefundRepository) Create(ctx context.Context, rec *refund.Record) error {
	params, err := converter.RefundToCreateParams(rec)
	if err != nil {
		return infra.WrapRepoErr("failed to convert refund record", err, infra.KindDBFailure)
	}
	if err = r.queries.CreateRefund(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create refund record", err)
	}
	return nil
}

func (r *RefundRepository) MarkIssued(ctx context.Context, id string) error {
	n, err := r.queries.MarkRefundIssued(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark refund issued", err)
	}
	if n == 0 {
		return infra.NotFound("pending refund not found")
	}
	return nil
}

func (r *RefundRepository) Release(ctx context.Context, id string) error {
	n, err := r.queries.DeleteRefundClaim(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release refund claim", err)
	}
	if n == 0 {
		return infra.NotFound("pending refund not found")
	}
	return nil
}

type OutboxWriteQueries interface {
	EnqueueOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{queries: queries, db: db}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.EnqueueOutboxEventParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}
	if err := r.queries.EnqueueOutboxEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}
	return nil
}
