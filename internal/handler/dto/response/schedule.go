package response

import (
	"trainer-booking/internal/usecase/queries"
)

type SessionValidityResponse struct {
	Valid              bool     `json:"valid"`
	Reason             string   `json:"reason,omitempty"`
	InvalidSessionIDs  []string `json:"invalid_session_ids"`
	MissingSessionIDs  []string `json:"missing_session_ids"`
	FullSessionIDs     []string `json:"full_session_ids"`
	ConflictSessionIDs []string `json:"conflict_session_ids"`
}

func FromValidationResult(r *queries.ValidationResult) *SessionValidityResponse {
	return &SessionValidityResponse{
		Valid:              r.Valid,
		Reason:             r.Reason,
		InvalidSessionIDs:  nonNil(r.InvalidSessionIDs),
		MissingSessionIDs:  nonNil(r.MissingSessionIDs),
		FullSessionIDs:     nonNil(r.FullSessionIDs),
		ConflictSessionIDs: nonNil(r.ConflictSessionIDs),
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// Session and schedule views already carry their wire shape.
type (
	SessionResponse        = queries.SessionView
	WeeklyScheduleResponse = queries.WeeklyScheduleView
)
