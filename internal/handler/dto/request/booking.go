package request

import (
	"trainer-booking/internal/pkg/timefmt"
	"trainer-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	BookerID      uuid.UUID `json:"booker_id" binding:"required"`
	TrainerID     uuid.UUID `json:"trainer_id" binding:"required"`
	SessionIDs    []string  `json:"session_ids" binding:"required,min=1,dive,required"`
	DurationWeeks int       `json:"duration_weeks" binding:"required,min=1"`
	// Decimal string such as "200.00", or "free"
	TotalPrice string `json:"total_price" binding:"required"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		BookerID:      r.BookerID,
		TrainerID:     r.TrainerID,
		SessionIDs:    r.SessionIDs,
		DurationWeeks: r.DurationWeeks,
		TotalPrice:    r.TotalPrice,
	}
}

type PatchBookingRequest struct {
	Status   string            `json:"status" binding:"required"`
	Reason   string            `json:"reason"`
	CancelAt *timefmt.Flexible `json:"cancel_at"`
}

func (r *PatchBookingRequest) ToInput() commands.PatchInput {
	return commands.PatchInput{
		Status:   r.Status,
		Reason:   r.Reason,
		CancelAt: r.CancelAt.Ptr(),
	}
}

type PayBookingRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

type StartBookingRequest struct {
	StartAt timefmt.Flexible `json:"start_at" binding:"required"`
}

type ListBookingsQuery struct {
	BookerID  string `form:"bookerId"`
	TrainerID string `form:"trainerId"`
	Status    string `form:"status"`
	After     string `form:"after"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
