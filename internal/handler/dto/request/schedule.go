package request

import (
	"strings"

	"github.com/google/uuid"
)

type SessionValidityQuery struct {
	TrainerID  string `form:"trainerId" binding:"required"`
	SessionIDs string `form:"sessionIds" binding:"required"`
	BookerID   string `form:"bookerId"`
}

// IDs splits the comma separated sessionIds parameter.
func (q *SessionValidityQuery) IDs() []string {
	parts := strings.Split(q.SessionIDs, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type PublishSlotRequest struct {
	Day       string `json:"day" binding:"required"`
	Time      string `json:"time" binding:"required"`
	ClassType string `json:"class_type" binding:"required"`
	// Omitted or null means unlimited
	ParticipantLimit *int32 `json:"participant_limit" binding:"omitempty,min=0"`
	// Decimal string, or "free"
	ClassPrice string `json:"class_price" binding:"required"`
}

const (
	ParticipantActionReserve  = "reserve"
	ParticipantActionMarkPaid = "mark_paid"
	ParticipantActionRemove   = "remove"
)

type UpdateParticipantsRequest struct {
	Action     string    `json:"action" binding:"required,oneof=reserve mark_paid remove"`
	SessionIDs []string  `json:"session_ids" binding:"required,min=1,dive,required"`
	BookerID   uuid.UUID `json:"booker_id" binding:"required"`
	PaymentID  string    `json:"payment_id" binding:"required_if=Action mark_paid"`
}
