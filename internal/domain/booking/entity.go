package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/domain/timepolicy"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrReasonRequired       = errors.New("reason is required")
	ErrPaymentIDRequired    = errors.New("payment id is required")
	ErrInvalidDuration      = errors.New("duration must be at least one week")
	ErrTrainerMismatch      = errors.New("session does not belong to the booked trainer")
	ErrNotExpired           = errors.New("booking has not reached its expiry window")
	ErrStartBeforeBooking   = errors.New("start date cannot precede the booking date")
	ErrInconsistentSnapshot = errors.New("inconsistent booking snapshot")
)

// TransitionError records which event was refused in which phase.
type TransitionError struct {
	From  Phase
	Event string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in %s status", e.Event, e.From.Status())
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type Booking struct {
	id            uuid.UUID
	bookerID      uuid.UUID
	trainerID     uuid.UUID
	sessions      []schedule.SessionKey
	durationWeeks int
	totalPrice    money.Price
	bookedAt      time.Time
	state         State
}

// NewBooking creates a Pending booking. A nil id is replaced by a fresh one.
func NewBooking(
	id, bookerID, trainerID uuid.UUID,
	sessionIDs []string,
	durationWeeks int,
	totalPrice money.Price,
	bookedAt time.Time,
) (*Booking, error) {
	keys, err := schedule.ParseSessionIDs(sessionIDs)
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if k.TrainerID != trainerID {
			return nil, fmt.Errorf("%w: %s", ErrTrainerMismatch, k.ID())
		}
	}
	if durationWeeks < 1 {
		return nil, ErrInvalidDuration
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Booking{
		id:            id,
		bookerID:      bookerID,
		trainerID:     trainerID,
		sessions:      keys,
		durationWeeks: durationWeeks,
		totalPrice:    totalPrice,
		bookedAt:      bookedAt.UTC(),
		state:         Pending{},
	}, nil
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) BookerID() uuid.UUID     { return b.bookerID }
func (b *Booking) TrainerID() uuid.UUID    { return b.trainerID }
func (b *Booking) DurationWeeks() int      { return b.durationWeeks }
func (b *Booking) TotalPrice() money.Price { return b.totalPrice }
func (b *Booking) BookedAt() time.Time     { return b.bookedAt }
func (b *Booking) State() State            { return b.state }
func (b *Booking) Phase() Phase            { return b.state.Phase() }
func (b *Booking) Status() Status          { return b.state.Phase().Status() }
func (b *Booking) IsTerminal() bool        { return b.state.Phase().IsTerminal() }
func (b *Booking) SessionIDs() []string    { return schedule.KeyIDs(b.sessions) }

func (b *Booking) SessionKeys() []schedule.SessionKey {
	out := make([]schedule.SessionKey, len(b.sessions))
	copy(out, b.sessions)
	return out
}

// IsPaid is true once payment succeeded, including after the booking ended or was dropped.
func (b *Booking) IsPaid() bool {
	switch b.state.(type) {
	case Paid, Started, Ended, Dropped:
		return true
	default:
		return false
	}
}

// HoldsCapacity reports whether participant entries are committed for this booking.
func (b *Booking) HoldsCapacity() bool {
	switch b.state.(type) {
	case Paid, Started:
		return true
	default:
		return false
	}
}

// IsExpiredAt classifies a still-Pending booking against the expiry window.
func (b *Booking) IsExpiredAt(now time.Time) bool {
	_, pending := b.state.(Pending)
	return pending && timepolicy.IsExpired(b.bookedAt, now)
}

func (b *Booking) refuse(event string) error {
	return &TransitionError{From: b.Phase(), Event: event}
}

func (b *Booking) Accept(now time.Time) error {
	if _, ok := b.state.(Pending); !ok {
		return b.refuse("accept")
	}
	if timepolicy.IsExpired(b.bookedAt, now) {
		return b.refuse("accept")
	}
	b.state = Accepted{AcceptedAt: now.UTC()}
	return nil
}

func (b *Booking) Reject(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	if _, ok := b.state.(Pending); !ok {
		return b.refuse("reject")
	}
	if reason == "" {
		return ErrReasonRequired
	}
	b.state = Rejected{Reason: reason, RejectedAt: now.UTC()}
	return nil
}

// Cancel is allowed while Pending or Accepted but unpaid.
func (b *Booking) Cancel(reason string, cancelAt time.Time) error {
	reason = strings.TrimSpace(reason)
	var acceptedAt *time.Time
	switch s := b.state.(type) {
	case Pending:
	case Accepted:
		at := s.AcceptedAt
		acceptedAt = &at
	default:
		return b.refuse("cancel")
	}
	if reason == "" {
		return ErrReasonRequired
	}
	b.state = Cancelled{Reason: reason, CancelAt: cancelAt.UTC(), AcceptedAt: acceptedAt}
	return nil
}

func (b *Booking) Expire(now time.Time) error {
	if _, ok := b.state.(Pending); !ok {
		return b.refuse("expire")
	}
	if !timepolicy.IsExpired(b.bookedAt, now) {
		return ErrNotExpired
	}
	b.state = Expired{ExpiredAt: now.UTC()}
	return nil
}

func (b *Booking) Pay(paymentID string, now time.Time) error {
	paymentID = strings.TrimSpace(paymentID)
	s, ok := b.state.(Accepted)
	if !ok {
		return b.refuse("pay")
	}
	if paymentID == "" {
		return ErrPaymentIDRequired
	}
	b.state = Paid{AcceptedAt: s.AcceptedAt, PaidAt: now.UTC(), PaymentID: paymentID}
	return nil
}

// Start sets the start date exactly once, after payment.
func (b *Booking) Start(startAt time.Time) error {
	s, ok := b.state.(Paid)
	if !ok {
		return b.refuse("start")
	}
	if startAt.Before(b.bookedAt.Truncate(24 * time.Hour)) {
		return ErrStartBeforeBooking
	}
	startAt = startAt.UTC()
	b.state = Started{Paid: s, StartAt: startAt, EndDate: timepolicy.EndDate(startAt, b.durationWeeks)}
	return nil
}

func (b *Booking) End(now time.Time) error {
	s, ok := b.state.(Started)
	if !ok {
		return b.refuse("end")
	}
	b.state = Ended{Started: s, EndedAt: now.UTC()}
	return nil
}

func (b *Booking) Drop(reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)
	s, ok := b.state.(Started)
	if !ok {
		return b.refuse("drop")
	}
	if reason == "" {
		return ErrReasonRequired
	}
	b.state = Dropped{Started: s, Reason: reason, DroppedAt: now.UTC()}
	return nil
}

// CheckDrop validates a drop without mutating the booking.
func (b *Booking) CheckDrop(reason string) error {
	if _, ok := b.state.(Started); !ok {
		return b.refuse("drop")
	}
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return nil
}

// ShouldEndAt reports whether a started booking has run its full duration.
func (b *Booking) ShouldEndAt(now time.Time) bool {
	s, ok := b.state.(Started)
	return ok && !now.Before(s.EndDate)
}
