package queries

import (
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrHistoryNotFound = errs.New("history record not found")
	ErrRefundNotFound  = errs.New("refund record not found")
	ErrInvalidCursor   = errs.Validation("invalid cursor")
	ErrFilterRequired  = errs.Validation("either bookerId or trainerId is required")
	ErrInvalidStatus   = errs.Validation("invalid status filter")
)

// BookingView is the read model of a live booking. Status has read-time expiry applied.
type BookingView struct {
	ID            uuid.UUID  `json:"id"`
	BookerID      uuid.UUID  `json:"booker_id"`
	TrainerID     uuid.UUID  `json:"trainer_id"`
	SessionIDs    []string   `json:"session_ids"`
	DurationWeeks int        `json:"duration_weeks"`
	TotalPrice    string     `json:"total_price"`
	Status        string     `json:"status"`
	Paid          bool       `json:"paid"`
	PaymentID     string     `json:"payment_id,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	BookedAt      time.Time  `json:"booked_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	RejectedAt    *time.Time `json:"rejected_at,omitempty"`
	CancelAt      *time.Time `json:"cancel_at,omitempty"`
	ExpiredAt     *time.Time `json:"expired_at,omitempty"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	DroppedAt     *time.Time `json:"dropped_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	RemainingTime string     `json:"remaining_time,omitempty"`
	// ExpiryPending marks a stored Pending row that the read classified as Expired.
	ExpiryPending bool `json:"-"`
}

type BookingFilter struct {
	BookerID  *uuid.UUID
	TrainerID *uuid.UUID
	Phases    []booking.Phase
	After     *Keyset
	Limit     int32
}

type HistoryView struct {
	BookingView
	ArchivedAt time.Time `json:"archived_at"`
}

type HistoryFilter struct {
	BookerID  *uuid.UUID
	TrainerID *uuid.UUID
	After     *Keyset
	Limit     int32
}

type RefundView struct {
	RefundID              string      `json:"refund_id"`
	BookingID             uuid.UUID   `json:"booking_id"`
	BookerID              uuid.UUID   `json:"booker_id"`
	RefundedAt            time.Time   `json:"refunded_at"`
	RefundPercentage      int         `json:"refund_percentage"`
	RefundAmount          string      `json:"refund_amount"`
	PaymentID             string      `json:"payment_id,omitempty"`
	Reason                string      `json:"reason"`
	SourceBookingSnapshot BookingView `json:"source_booking_snapshot"`
}

type ParticipantView struct {
	BookerID uuid.UUID `json:"booker_id"`
	Accepted bool      `json:"accepted"`
	Paid     bool      `json:"paid"`
}

type SessionView struct {
	SessionID        string            `json:"session_id"`
	TrainerID        uuid.UUID         `json:"trainer_id"`
	Day              string            `json:"day"`
	Time             string            `json:"time"`
	ClassType        string            `json:"class_type"`
	ParticipantLimit *int32            `json:"participant_limit"`
	Unlimited        bool              `json:"unlimited"`
	ClassPrice       string            `json:"class_price"`
	ParticipantCount int               `json:"participant_count"`
	Available        bool              `json:"available"`
	Participants     []ParticipantView `json:"participants"`
}

type DayScheduleView struct {
	Day      string         `json:"day"`
	Sessions []*SessionView `json:"sessions"`
}

type WeeklyScheduleView struct {
	TrainerID uuid.UUID          `json:"trainer_id"`
	Days      []*DayScheduleView `json:"days"`
}
