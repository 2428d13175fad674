package memstore

import (
	"context"
	"sort"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st *state
}

func (t *memTx) Sessions() shared.SessionRepository { return &sessionRepo{st: t.st} }
func (t *memTx) Bookings() shared.BookingRepository { return &bookingRepo{st: t.st} }
func (t *memTx) History() shared.HistoryRepository  { return &historyRepo{st: t.st} }
func (t *memTx) Refunds() shared.RefundRepository   { return &refundRepo{st: t.st} }
func (t *memTx) Outbox() shared.OutboxRepository    { return &outboxRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads         { return &reads{st: t.st} }

type sessionRepo struct{ st *state }

func (r *sessionRepo) LockByKeys(ctx context.Context, keys []schedule.SessionKey) ([]*schedule.Session, error) {
	out := make([]*schedule.Session, 0, len(keys))
	for _, key := range keys {
		s, err := r.LockByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *sessionRepo) LockByKey(ctx context.Context, key schedule.SessionKey) (*schedule.Session, error) {
	s, ok := r.st.sessions[key]
	if !ok {
		return nil, infra.NotFound("session not found: " + key.ID())
	}
	return cloneSession(s), nil
}

func (r *sessionRepo) Save(ctx context.Context, s *schedule.Session) error {
	r.st.sessions[s.Key()] = cloneSession(s)
	return nil
}

type bookingRepo struct{ st *state }

func (r *bookingRepo) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	snap, ok := r.st.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	b, err := booking.Restore(cloneSnapshot(snap))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to restore booking", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *bookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	if _, exists := r.st.bookings[b.ID()]; exists {
		return duplicate("booking already exists")
	}
	r.st.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r *bookingRepo) Update(ctx context.Context, b *booking.Booking) error {
	if _, exists := r.st.bookings[b.ID()]; !exists {
		return infra.NotFound("booking not found")
	}
	r.st.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.st.bookings, id)
	return nil
}

type historyRepo struct{ st *state }

func (r *historyRepo) Upsert(ctx context.Context, rec *booking.HistoryRecord) error {
	c := *rec
	c.Booking = cloneSnapshot(rec.Booking)
	r.st.history[rec.Booking.ID] = c
	return nil
}

type refundRepo struct{ st *state }

func (r *refundRepo) Create(ctx context.Context, rec *refund.Record) error {
	if _, exists := r.st.refunds[rec.ID]; exists {
		return duplicate("refund already exists")
	}
	for _, existing := range r.st.refunds {
		if existing.BookingID == rec.BookingID {
			return duplicate("booking already refunded")
		}
	}
	r.st.refunds[rec.ID] = *rec
	return nil
}

func (r *refundRepo) MarkIssued(ctx context.Context, id string) error {
	rec, ok := r.st.refunds[id]
	if !ok || rec.Status != refund.StatusPending {
		return infra.NotFound("pending refund not found")
	}
	rec.Status = refund.StatusIssued
	r.st.refunds[id] = rec
	return nil
}

func (r *refundRepo) Release(ctx context.Context, id string) error {
	rec, ok := r.st.refunds[id]
	if !ok || rec.Status != refund.StatusPending {
		return infra.NotFound("pending refund not found")
	}
	delete(r.st.refunds, id)
	return nil
}

type outboxRepo struct{ st *state }

func (r *outboxRepo) Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.st.outboxID++
	r.st.outbox = append(r.st.outbox, outboxRow{
		msg: shared.OutboxMessage{
			ID:      r.st.outboxID,
			Kind:    kind,
			Topic:   topic,
			Payload: append([]byte(nil), payload...),
			RunAt:   runAt.UTC(),
		},
		status: outboxPending,
	})
	return nil
}

type reads struct{ st *state }

func (r *reads) SessionsByKeys(ctx context.Context, keys []schedule.SessionKey) (map[schedule.SessionKey]*schedule.Session, error) {
	out := make(map[schedule.SessionKey]*schedule.Session, len(keys))
	for _, key := range keys {
		if s, ok := r.st.sessions[key]; ok {
			out[key] = cloneSession(s)
		}
	}
	return out, nil
}

func (r *reads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return (&bookingRepo{st: r.st}).LockByID(ctx, id)
}

func (r *reads) HistoryByBookingID(ctx context.Context, id uuid.UUID) (*booking.HistoryRecord, error) {
	rec, ok := r.st.history[id]
	if !ok {
		return nil, infra.NotFound("history record not found")
	}
	rec.Booking = cloneSnapshot(rec.Booking)
	return &rec, nil
}

func (r *reads) PendingBookedBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	type item struct {
		id uuid.UUID
		at time.Time
	}
	var items []item
	for id, b := range r.st.bookings {
		if b.Phase == booking.PhasePending && b.BookedAt.Before(cutoff) {
			items = append(items, item{id: id, at: b.BookedAt})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].at.Before(items[j].at) })
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if limit > 0 && len(ids) == int(limit) {
			break
		}
		ids = append(ids, it.id)
	}
	return ids, nil
}

func (r *reads) StartedEndingBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	type item struct {
		id uuid.UUID
		at time.Time
	}
	var items []item
	for id, b := range r.st.bookings {
		if b.Phase == booking.PhaseStarted && b.EndDate != nil && !b.EndDate.After(cutoff) {
			items = append(items, item{id: id, at: *b.EndDate})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].at.Before(items[j].at) })
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if limit > 0 && len(ids) == int(limit) {
			break
		}
		ids = append(ids, it.id)
	}
	return ids, nil
}

// lockedReads takes the store read lock for each call.
type lockedReads struct{ store *Store }

func (l *lockedReads) do() (*reads, func()) {
	l.store.mu.RLock()
	return &reads{st: l.store.state}, l.store.mu.RUnlock
}

func (l *lockedReads) SessionsByKeys(ctx context.Context, keys []schedule.SessionKey) (map[schedule.SessionKey]*schedule.Session, error) {
	r, unlock := l.do()
	defer unlock()
	return r.SessionsByKeys(ctx, keys)
}

func (l *lockedReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r, unlock := l.do()
	defer unlock()
	return r.BookingByID(ctx, id)
}

func (l *lockedReads) HistoryByBookingID(ctx context.Context, id uuid.UUID) (*booking.HistoryRecord, error) {
	r, unlock := l.do()
	defer unlock()
	return r.HistoryByBookingID(ctx, id)
}

func (l *lockedReads) PendingBookedBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	r, unlock := l.do()
	defer unlock()
	return r.PendingBookedBefore(ctx, cutoff, limit)
}

func (l *lockedReads) StartedEndingBefore(ctx context.Context, cutoff time.Time, limit int32) ([]uuid.UUID, error) {
	r, unlock := l.do()
	defer unlock()
	return r.StartedEndingBefore(ctx, cutoff, limit)
}
