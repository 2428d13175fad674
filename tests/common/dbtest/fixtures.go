//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SeedSession inserts a published slot and returns its session id.
func SeedSession(t *testing.T, db DBLike, trainerID uuid.UUID, day string, dayIndex int, timeOfDay, classType string, limit *int32, priceCents *int64) string {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO sessions (trainer_id, day, day_index, time_of_day, class_type, participant_limit, class_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (trainer_id, day, time_of_day) DO UPDATE
		SET class_type = EXCLUDED.class_type,
		    participant_limit = EXCLUDED.participant_limit,
		    class_price_cents = EXCLUDED.class_price_cents`,
		trainerID, day, dayIndex, timeOfDay, classType, limit, priceCents)
	require.NoError(t, err)

	return fmt.Sprintf("%s-%s-%s", trainerID, day, timeOfDay)
}

// BackdateBooking moves booked_at into the past so expiry can be exercised.
func BackdateBooking(t *testing.T, db DBLike, bookingID uuid.UUID, bookedAt time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE bookings SET booked_at = $2 WHERE id = $1", bookingID, bookedAt)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "booking %s not found", bookingID)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
