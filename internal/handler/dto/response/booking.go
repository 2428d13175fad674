package response

import (
	"time"

	"trainer-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookerID      uuid.UUID  `json:"booker_id"`
	TrainerID     uuid.UUID  `json:"trainer_id"`
	SessionIDs    []string   `json:"session_ids"`
	DurationWeeks int        `json:"duration_weeks"`
	TotalPrice    string     `json:"total_price"`
	Status        string     `json:"status"`
	Paid          bool       `json:"paid"`
	BookedAt      time.Time  `json:"booked_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	PaymentID     string     `json:"payment_id,omitempty"`
	StartAt       *time.Time `json:"start_at,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	RejectedAt    *time.Time `json:"rejected_at,omitempty"`
	CancelAt      *time.Time `json:"cancel_at,omitempty"`
	ExpiredAt     *time.Time `json:"expired_at,omitempty"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	DroppedAt     *time.Time `json:"dropped_at,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	RemainingTime string     `json:"remaining_time,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	res := &BookingResponse{}
	_ = copier.Copy(res, v)
	return res
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}
	res := &BookingListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type HistoryResponse struct {
	BookingResponse
	ArchivedAt time.Time `json:"archived_at"`
}

func FromHistoryView(v *queries.HistoryView) *HistoryResponse {
	return &HistoryResponse{
		BookingResponse: *FromBookingView(&v.BookingView),
		ArchivedAt:      v.ArchivedAt,
	}
}

type HistoryListResponse struct {
	Items      []*HistoryResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromHistoryList(views []*queries.HistoryView, next *queries.Cursor) *HistoryListResponse {
	items := make([]*HistoryResponse, len(views))
	for i, v := range views {
		items[i] = FromHistoryView(v)
	}
	res := &HistoryListResponse{Items: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type RefundResponse struct {
	RefundID              string          `json:"refund_id"`
	BookingID             uuid.UUID       `json:"booking_id"`
	BookerID              uuid.UUID       `json:"booker_id"`
	RefundedAt            time.Time       `json:"refunded_at"`
	RefundPercentage      int             `json:"refund_percentage"`
	RefundAmount          string          `json:"refund_amount"`
	PaymentID             string          `json:"payment_id,omitempty"`
	Reason                string          `json:"reason"`
	SourceBookingSnapshot BookingResponse `json:"source_booking_snapshot"`
}

func FromRefundView(v *queries.RefundView) *RefundResponse {
	res := &RefundResponse{}
	_ = copier.Copy(res, v)
	res.SourceBookingSnapshot = *FromBookingView(&v.SourceBookingSnapshot)
	return res
}
