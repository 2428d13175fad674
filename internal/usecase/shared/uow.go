package shared

import (
	"context"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Sessions() SessionRepository
	Bookings() BookingRepository
	History() HistoryRepository
	Refunds() RefundRepository
	Outbox() OutboxRepository
	Reads() CommandReads
}

type CommandReads interface {
	// SessionsByKeys returns the sessions that exist; absent keys are simply missing from the map.
	SessionsByKeys(ctx context.Context, keys []schedule.SessionKey) (map[schedule.SessionKey]*schedule.Session, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	HistoryByBookingID(ctx context.Context, id uuid.UUID) (*booking.HistoryRecord, error)
	// PendingBookedBefore lists pending booking ids whose bookedAt is before cutoff.
	PendingBookedBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error)
	// StartedEndingBefore lists started booking ids whose end date is not after cutoff.
	StartedEndingBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error)
}

type SessionRepository interface {
	// LockByKeys locks the rows in key order and returns them in the order requested.
	// A missing key yields a NotFound repository error.
	LockByKeys(ctx context.Context, keys []schedule.SessionKey) ([]*schedule.Session, error)
	LockByKey(ctx context.Context, key schedule.SessionKey) (*schedule.Session, error)
	// Save upserts the definition and replaces the participant set.
	Save(ctx context.Context, s *schedule.Session) error
}

type BookingRepository interface {
	LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type HistoryRepository interface {
	// Upsert overwrites any earlier archive of the same booking.
	Upsert(ctx context.Context, rec *booking.HistoryRecord) error
}

type RefundRepository interface {
	// Create fails with a duplicate key error when the booking already has a record.
	Create(ctx context.Context, rec *refund.Record) error
	MarkIssued(ctx context.Context, id string) error
	// Release deletes a record that is still pending.
	Release(ctx context.Context, id string) error
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
