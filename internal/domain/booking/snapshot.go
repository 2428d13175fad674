package booking

import (
	"fmt"
	"time"

	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/domain/timepolicy"

	"github.com/google/uuid"
)

// Snapshot is the flat, persistable form of a Booking. Each optional timestamp is set
// only in the phases that carry it.
type Snapshot struct {
	ID            uuid.UUID   `json:"id"`
	BookerID      uuid.UUID   `json:"booker_id"`
	TrainerID     uuid.UUID   `json:"trainer_id"`
	SessionIDs    []string    `json:"session_ids"`
	DurationWeeks int         `json:"duration_weeks"`
	TotalPrice    money.Price `json:"total_price"`
	Phase         Phase       `json:"phase"`
	BookedAt      time.Time   `json:"booked_at"`
	AcceptedAt    *time.Time  `json:"accepted_at,omitempty"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
	PaymentID     string      `json:"payment_id,omitempty"`
	StartAt       *time.Time  `json:"start_at,omitempty"`
	EndDate       *time.Time  `json:"end_date,omitempty"`
	Reason        string      `json:"reason,omitempty"`
	RejectedAt    *time.Time  `json:"rejected_at,omitempty"`
	CancelAt      *time.Time  `json:"cancel_at,omitempty"`
	ExpiredAt     *time.Time  `json:"expired_at,omitempty"`
	EndedAt       *time.Time  `json:"ended_at,omitempty"`
	DroppedAt     *time.Time  `json:"dropped_at,omitempty"`
}

func (s Snapshot) Status() Status { return s.Phase.Status() }

func (s Snapshot) Paid() bool {
	switch s.Phase {
	case PhasePaid, PhaseStarted, PhaseEnded, PhaseDropped:
		return true
	default:
		return false
	}
}

// TerminalAt is the timestamp of the terminal transition, if any.
func (s Snapshot) TerminalAt() *time.Time {
	switch s.Phase {
	case PhaseRejected:
		return s.RejectedAt
	case PhaseCancelled:
		return s.CancelAt
	case PhaseExpired:
		return s.ExpiredAt
	case PhaseEnded:
		return s.EndedAt
	case PhaseDropped:
		return s.DroppedAt
	default:
		return nil
	}
}

func ptr(t time.Time) *time.Time { return &t }

func (b *Booking) Snapshot() Snapshot {
	s := Snapshot{
		ID:            b.id,
		BookerID:      b.bookerID,
		TrainerID:     b.trainerID,
		SessionIDs:    b.SessionIDs(),
		DurationWeeks: b.durationWeeks,
		TotalPrice:    b.totalPrice,
		Phase:         b.Phase(),
		BookedAt:      b.bookedAt,
	}
	fillPaid := func(p Paid) {
		s.AcceptedAt = ptr(p.AcceptedAt)
		s.PaidAt = ptr(p.PaidAt)
		s.PaymentID = p.PaymentID
	}
	fillStarted := func(st Started) {
		fillPaid(st.Paid)
		s.StartAt = ptr(st.StartAt)
		s.EndDate = ptr(st.EndDate)
	}

	switch st := b.state.(type) {
	case Pending:
	case Accepted:
		s.AcceptedAt = ptr(st.AcceptedAt)
	case Paid:
		fillPaid(st)
	case Started:
		fillStarted(st)
	case Rejected:
		s.Reason = st.Reason
		s.RejectedAt = ptr(st.RejectedAt)
	case Cancelled:
		s.Reason = st.Reason
		s.CancelAt = ptr(st.CancelAt)
		s.AcceptedAt = st.AcceptedAt
	case Expired:
		s.ExpiredAt = ptr(st.ExpiredAt)
	case Ended:
		fillStarted(st.Started)
		s.EndedAt = ptr(st.EndedAt)
	case Dropped:
		fillStarted(st.Started)
		s.Reason = st.Reason
		s.DroppedAt = ptr(st.DroppedAt)
	}
	return s
}

// Restore rebuilds a Booking from storage, refusing snapshots whose fields do not fit the phase.
func Restore(s Snapshot) (*Booking, error) {
	keys := make([]schedule.SessionKey, 0, len(s.SessionIDs))
	for _, id := range s.SessionIDs {
		k, err := schedule.ParseSessionID(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInconsistentSnapshot, err)
		}
		keys = append(keys, k)
	}

	state, err := restoreState(s)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:            s.ID,
		bookerID:      s.BookerID,
		trainerID:     s.TrainerID,
		sessions:      keys,
		durationWeeks: s.DurationWeeks,
		totalPrice:    s.TotalPrice,
		bookedAt:      s.BookedAt.UTC(),
		state:         state,
	}, nil
}

func restoreState(s Snapshot) (State, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s booking %s without %s", ErrInconsistentSnapshot, s.Phase, s.ID, field)
	}
	paid := func() (Paid, error) {
		if s.AcceptedAt == nil {
			return Paid{}, missing("acceptedAt")
		}
		if s.PaidAt == nil || s.PaymentID == "" {
			return Paid{}, missing("payment")
		}
		return Paid{AcceptedAt: *s.AcceptedAt, PaidAt: *s.PaidAt, PaymentID: s.PaymentID}, nil
	}
	started := func() (Started, error) {
		p, err := paid()
		if err != nil {
			return Started{}, err
		}
		if s.StartAt == nil {
			return Started{}, missing("startAt")
		}
		end := timepolicy.EndDate(*s.StartAt, s.DurationWeeks)
		if s.EndDate != nil {
			end = *s.EndDate
		}
		return Started{Paid: p, StartAt: *s.StartAt, EndDate: end}, nil
	}

	switch s.Phase {
	case PhasePending:
		return Pending{}, nil
	case PhaseAccepted:
		if s.AcceptedAt == nil {
			return nil, missing("acceptedAt")
		}
		return Accepted{AcceptedAt: *s.AcceptedAt}, nil
	case PhasePaid:
		return paid()
	case PhaseStarted:
		return started()
	case PhaseRejected:
		if s.RejectedAt == nil {
			return nil, missing("rejectedAt")
		}
		return Rejected{Reason: s.Reason, RejectedAt: *s.RejectedAt}, nil
	case PhaseCancelled:
		if s.CancelAt == nil {
			return nil, missing("cancelAt")
		}
		return Cancelled{Reason: s.Reason, CancelAt: *s.CancelAt, AcceptedAt: s.AcceptedAt}, nil
	case PhaseExpired:
		if s.ExpiredAt == nil {
			return nil, missing("expiredAt")
		}
		return Expired{ExpiredAt: *s.ExpiredAt}, nil
	case PhaseEnded:
		st, err := started()
		if err != nil {
			return nil, err
		}
		if s.EndedAt == nil {
			return nil, missing("endedAt")
		}
		return Ended{Started: st, EndedAt: *s.EndedAt}, nil
	case PhaseDropped:
		st, err := started()
		if err != nil {
			return nil, err
		}
		if s.DroppedAt == nil {
			return nil, missing("droppedAt")
		}
		return Dropped{Started: st, Reason: s.Reason, DroppedAt: *s.DroppedAt}, nil
	default:
		return nil, fmt.Errorf("%w: unknown phase %q", ErrInconsistentSnapshot, s.Phase)
	}
}

// HistoryRecord is the archived copy of a booking that reached a terminal status.
type HistoryRecord struct {
	Booking    Snapshot
	ArchivedAt time.Time
}

func NewHistoryRecord(b *Booking, now time.Time) (*HistoryRecord, error) {
	if !b.IsTerminal() {
		return nil, b.refuse("archive")
	}
	return &HistoryRecord{Booking: b.Snapshot(), ArchivedAt: now.UTC()}, nil
}

// RemovesLiveRow reports whether archiving also deletes the active booking row.
// Ended and Expired rows stay until an operator clears them.
func (h *HistoryRecord) RemovesLiveRow() bool {
	switch h.Booking.Phase {
	case PhaseRejected, PhaseCancelled, PhaseDropped:
		return true
	default:
		return false
	}
}
