package request

import (
	"trainer-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type DropBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	// One of 0, 25, 50, 75, 100
	RefundPercentage *int   `json:"refund_percentage" binding:"required"`
	Reason           string `json:"reason" binding:"required"`
}

func (r *DropBookingRequest) ToInput() commands.DropInput {
	return commands.DropInput{
		BookingID:  r.BookingID,
		Percentage: *r.RefundPercentage,
		Reason:     r.Reason,
	}
}

type ArchiveBookingRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
}

type ListHistoryQuery struct {
	BookerID  string `form:"bookerId"`
	TrainerID string `form:"trainerId"`
	After     string `form:"after"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
