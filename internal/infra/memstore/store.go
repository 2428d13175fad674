// Package memstore keeps the whole booking state in process memory. Write
// transactions run one at a time against a private copy that replaces the
// shared state only on success.
package memstore

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/queries"
	"trainer-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type outboxRow struct {
	msg       shared.OutboxMessage
	status    string
	lastError string
}

type state struct {
	sessions map[schedule.SessionKey]*schedule.Session
	bookings map[uuid.UUID]booking.Snapshot
	history  map[uuid.UUID]booking.HistoryRecord
	refunds  map[string]refund.Record
	outbox   []outboxRow
	outboxID int64
}

func newState() *state {
	return &state{
		sessions: make(map[schedule.SessionKey]*schedule.Session),
		bookings: make(map[uuid.UUID]booking.Snapshot),
		history:  make(map[uuid.UUID]booking.HistoryRecord),
		refunds:  make(map[string]refund.Record),
	}
}

func cloneSession(s *schedule.Session) *schedule.Session {
	return schedule.ReconstructSession(s.Key(), s.ClassType(), s.Capacity(), s.Price(), s.Participants())
}

func cloneSnapshot(s booking.Snapshot) booking.Snapshot {
	s.SessionIDs = append([]string(nil), s.SessionIDs...)
	return s
}

func (st *state) clone() *state {
	c := &state{
		sessions: make(map[schedule.SessionKey]*schedule.Session, len(st.sessions)),
		bookings: make(map[uuid.UUID]booking.Snapshot, len(st.bookings)),
		history:  make(map[uuid.UUID]booking.HistoryRecord, len(st.history)),
		refunds:  make(map[string]refund.Record, len(st.refunds)),
		outbox:   append([]outboxRow(nil), st.outbox...),
		outboxID: st.outboxID,
	}
	for k, s := range st.sessions {
		c.sessions[k] = cloneSession(s)
	}
	for id, b := range st.bookings {
		c.bookings[id] = cloneSnapshot(b)
	}
	for id, h := range st.history {
		c.history[id] = h
	}
	for id, r := range st.refunds {
		c.refunds[id] = r
	}
	return c
}

type Store struct {
	mu    sync.RWMutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

// Within runs fn against a private copy of the state and publishes it only if fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.state.clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, &reads{st: s.state})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

// SeedSession stores a session outside any transaction.
func (s *Store) SeedSession(sess *schedule.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.sessions[sess.Key()] = cloneSession(sess)
}

// ----------------------------------------------------------------------------
// Query-side read stores
// ----------------------------------------------------------------------------

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*booking.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.state.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	snap := cloneSnapshot(b)
	return &snap, nil
}

func (s *Store) List(ctx context.Context, filter queries.BookingFilter) ([]*booking.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var phases map[booking.Phase]bool
	if len(filter.Phases) > 0 {
		phases = make(map[booking.Phase]bool, len(filter.Phases))
		for _, p := range filter.Phases {
			phases[p] = true
		}
	}

	out := make([]*booking.Snapshot, 0)
	for _, b := range s.state.bookings {
		if filter.BookerID != nil && b.BookerID != *filter.BookerID {
			continue
		}
		if filter.TrainerID != nil && b.TrainerID != *filter.TrainerID {
			continue
		}
		if phases != nil && !phases[b.Phase] {
			continue
		}
		if filter.After != nil && !before(b.BookedAt, b.ID, filter.After.At, filter.After.ID) {
			continue
		}
		snap := cloneSnapshot(b)
		out = append(out, &snap)
	}
	sort.Slice(out, func(i, j int) bool {
		return before(out[j].BookedAt, out[j].ID, out[i].BookedAt, out[i].ID)
	})
	if filter.Limit > 0 && len(out) > int(filter.Limit) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) FindSessions(ctx context.Context, keys []schedule.SessionKey) (map[schedule.SessionKey]*schedule.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&reads{st: s.state}).SessionsByKeys(ctx, keys)
}

func (s *Store) FindByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*schedule.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*schedule.Session, 0)
	for k, sess := range s.state.sessions {
		if k.TrainerID == trainerID {
			out = append(out, cloneSession(sess))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key().Less(out[j].Key()) })
	return out, nil
}

// HistoryStore serves the archive read side.
type HistoryStore struct{ store *Store }

func (s *Store) History() *HistoryStore { return &HistoryStore{store: s} }

func (h *HistoryStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.HistoryRecord, error) {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()
	return (&reads{st: h.store.state}).HistoryByBookingID(ctx, bookingID)
}

func (h *HistoryStore) List(ctx context.Context, filter queries.HistoryFilter) ([]*booking.HistoryRecord, error) {
	h.store.mu.RLock()
	defer h.store.mu.RUnlock()

	out := make([]*booking.HistoryRecord, 0)
	for _, rec := range h.store.state.history {
		if filter.BookerID != nil && rec.Booking.BookerID != *filter.BookerID {
			continue
		}
		if filter.TrainerID != nil && rec.Booking.TrainerID != *filter.TrainerID {
			continue
		}
		if filter.After != nil && !before(rec.ArchivedAt, rec.Booking.ID, filter.After.At, filter.After.ID) {
			continue
		}
		c := rec
		c.Booking = cloneSnapshot(rec.Booking)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		return before(out[j].ArchivedAt, out[j].Booking.ID, out[i].ArchivedAt, out[i].Booking.ID)
	})
	if filter.Limit > 0 && len(out) > int(filter.Limit) {
		out = out[:filter.Limit]
	}
	return out, nil
}

// RefundStore serves refund lookups.
type RefundStore struct{ store *Store }

func (s *Store) Refunds() *RefundStore { return &RefundStore{store: s} }

func (r *RefundStore) FindByID(ctx context.Context, id string) (*refund.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.state.refunds[id]
	if !ok || rec.Status != refund.StatusIssued {
		return nil, infra.NotFound("refund record not found")
	}
	return &rec, nil
}

// before orders keyset positions newest first: (at, id) sorts after (refAt, refID) in a DESC listing.
func before(at time.Time, id uuid.UUID, refAt time.Time, refID uuid.UUID) bool {
	if !at.Equal(refAt) {
		return at.Before(refAt)
	}
	return bytes.Compare(id[:], refID[:]) < 0
}

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("duplicate key"), infra.KindDuplicateKey)
}
