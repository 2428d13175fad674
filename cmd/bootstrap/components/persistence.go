package components

import (
	"log/slog"

	"trainer-booking/internal/infra/memstore"
	"trainer-booking/internal/infra/outbox"
	"trainer-booking/internal/infra/readstore"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/infra/uow"
	"trainer-booking/internal/pkg/config"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewStores,
	),
)

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

// Stores exposes one backend through every port the use cases depend on.
type Stores struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Outbox     shared.OutboxStore
	Bookings   queries.BookingReadStore
	Schedule   queries.ScheduleReadStore
	Sessions   queries.SessionReader
	History    queries.HistoryReadStore
	Refunds    queries.RefundReadStore
}

func NewStores(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) Stores {
	policy := shared.DefaultOutboxRetryPolicy()
	if cfg.Worker.OutboxMaxAttempts > 0 {
		policy.MaxAttempts = cfg.Worker.OutboxMaxAttempts
	}

	if cfg.Store.Driver == config.StoreDriverMemory || pool == nil {
		logger.Warn("using in-memory store; data is lost on restart")
		mem := memstore.New()
		return Stores{
			UnitOfWork: mem,
			Outbox:     memstore.NewOutboxStore(mem, policy),
			Bookings:   mem,
			Schedule:   mem,
			Sessions:   mem,
			History:    mem.History(),
			Refunds:    mem.Refunds(),
		}
	}

	schedules := readstore.NewScheduleReadStore(q, pool)
	return Stores{
		UnitOfWork: uow.NewPostgresUoW(pool, q),
		Outbox:     outbox.NewPostgresStore(pool, q, policy),
		Bookings:   readstore.NewBookingReadStore(q, pool),
		Schedule:   schedules,
		Sessions:   schedules,
		History:    readstore.NewHistoryReadStore(q, pool),
		Refunds:    readstore.NewRefundReadStore(q, pool),
	}
}
