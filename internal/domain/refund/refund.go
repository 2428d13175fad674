package refund

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidPercentage = errors.New("refund percentage must be one of 0, 25, 50, 75, 100")
	ErrNotDropped        = errors.New("refund records are only built for dropped bookings")
)

type Percentage int

var allowedPercentages = []Percentage{0, 25, 50, 75, 100}

func AllowedPercentages() []Percentage {
	out := make([]Percentage, len(allowedPercentages))
	copy(out, allowedPercentages)
	return out
}

func NewPercentage(v int) (Percentage, error) {
	for _, p := range allowedPercentages {
		if int(p) == v {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: got %d", ErrInvalidPercentage, v)
}

func (p Percentage) Int() int { return int(p) }

// Compute rounds half-up to the cent. A free price always refunds zero.
func Compute(total money.Price, pct Percentage) money.Money {
	if total.IsFree() {
		return money.Zero()
	}
	return total.Amount().PercentHalfUp(int(pct))
}

type Status string

const (
	// StatusPending marks a claimed drop whose money has not been confirmed yet.
	StatusPending Status = "pending"
	StatusIssued  Status = "issued"
)

// Record is the immutable audit entry for one dropped booking.
type Record struct {
	ID         string           `json:"refund_id"`
	BookingID  uuid.UUID        `json:"booking_id"`
	BookerID   uuid.UUID        `json:"booker_id"`
	RefundedAt time.Time        `json:"refunded_at"`
	Percentage Percentage       `json:"refund_percentage"`
	Amount     money.Money      `json:"refund_amount"`
	PaymentID  string           `json:"payment_id"`
	Reason     string           `json:"reason"`
	Snapshot   booking.Snapshot `json:"source_booking_snapshot"`
	Status     Status           `json:"-"`
}

// IssuesMoney is false for zero-amount refunds, which are recorded but never sent to a gateway.
func (r *Record) IssuesMoney() bool { return !r.Amount.IsZero() }

// IdempotencyKey is shared by every refund attempt on the same booking.
func (r *Record) IdempotencyKey() string { return IdempotencyKey(r.BookingID) }

func IdempotencyKey(bookingID uuid.UUID) string { return "drop-" + bookingID.String() }

// NewRecord builds the record from the booking as it stands after Drop.
func NewRecord(b *booking.Booking, pct Percentage, now time.Time) (*Record, error) {
	snap := b.Snapshot()
	if snap.Phase != booking.PhaseDropped {
		return nil, ErrNotDropped
	}
	id, err := NewID(snap.BookerID, now, rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Record{
		ID:         id,
		BookingID:  snap.ID,
		BookerID:   snap.BookerID,
		RefundedAt: now.UTC(),
		Percentage: pct,
		Amount:     Compute(snap.TotalPrice, pct),
		PaymentID:  snap.PaymentID,
		Reason:     snap.Reason,
		Snapshot:   snap,
		Status:     StatusPending,
	}, nil
}

// NewID renders "<bookerId>-<yyyymmdd>-<8 hex>".
func NewID(bookerID uuid.UUID, at time.Time, rnd io.Reader) (string, error) {
	var suffix [4]byte
	if _, err := io.ReadFull(rnd, suffix[:]); err != nil {
		return "", fmt.Errorf("failed to generate refund id suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s-%s", bookerID, at.UTC().Format("20060102"), hex.EncodeToString(suffix[:])), nil
}
