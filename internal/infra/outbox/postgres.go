package outbox

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"trainer-booking/internal/infra"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"
	"trainer-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OutboxQueries interface {
	ClaimDueOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventPublishedParams) error
	MarkOutboxEventRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventRetryParams) error
}

type PostgresStore struct {
	pool    *pgxpool.Pool
	queries OutboxQueries
	policy  shared.OutboxRetryPolicy
}

func NewPostgresStore(pool *pgxpool.Pool, queries OutboxQueries, policy shared.OutboxRetryPolicy) *PostgresStore {
	return &PostgresStore{pool: pool, queries: queries, policy: policy}
}

func (s *PostgresStore) Dispatch(ctx context.Context, now time.Time, limit int32, handle shared.OutboxHandler) (shared.DispatchResult, error) {
	var result shared.DispatchResult

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return result, infra.WrapRepoErr("failed to begin outbox transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("outbox rollback failed", "error", rbErr.Error())
		}
	}()

	result, err = dispatchRows(ctx, s.queries, tx, s.policy, now, limit, handle)
	if err != nil {
		return result, err
	}
	if err := tx.Commit(ctx); err != nil {
		return shared.DispatchResult{}, infra.WrapRepoErr("failed to commit outbox transaction", err)
	}
	return result, nil
}

func dispatchRows(
	ctx context.Context,
	queries OutboxQueries,
	db sqlc.DBTX,
	policy shared.OutboxRetryPolicy,
	now time.Time,
	limit int32,
	handle shared.OutboxHandler,
) (shared.DispatchResult, error) {
	var result shared.DispatchResult

	rows, err := queries.ClaimDueOutboxEvents(ctx, db, sqlc.ClaimDueOutboxEventsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return result, infra.WrapRepoErr("failed to claim outbox events", err)
	}

	for _, row := range rows {
		msg := shared.OutboxMessage{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		}
		if herr := handle(ctx, msg); herr != nil {
			attempts := row.Attempts + 1
			err = queries.MarkOutboxEventRetry(ctx, db, sqlc.MarkOutboxEventRetryParams{
				ID:          row.ID,
				LastError:   pgconv.StringToPgtype(herr.Error()),
				RunAt:       pgconv.TimeToPgtype(policy.NextRunAt(now, attempts)),
				MaxAttempts: policy.MaxAttempts,
			})
			if err != nil {
				return result, infra.WrapRepoErr("failed to reschedule outbox event", err)
			}
			if policy.Exhausted(attempts) {
				slog.ErrorContext(ctx, "outbox event gave up",
					slog.Int64("id", row.ID),
					slog.String("kind", row.Kind),
					slog.Any("error", herr))
			}
			result.Retried++
			continue
		}
		err = queries.MarkOutboxEventPublished(ctx, db, sqlc.MarkOutboxEventPublishedParams{
			ID:          row.ID,
			PublishedAt: pgconv.TimeToPgtype(now),
		})
		if err != nil {
			return result, infra.WrapRepoErr("failed to mark outbox event published", err)
		}
		result.Published++
	}
	return result, nil
}
