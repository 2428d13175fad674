package queries

import (
	"context"
	"fmt"
	"strings"

	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// ValidationResult lists offending sessions by cause. Reason keeps the legacy
// "... session id: a, b" suffix for older clients.
type ValidationResult struct {
	Valid              bool     `json:"valid"`
	Reason             string   `json:"reason,omitempty"`
	InvalidSessionIDs  []string `json:"invalid_session_ids"`
	MissingSessionIDs  []string `json:"missing_session_ids"`
	FullSessionIDs     []string `json:"full_session_ids"`
	ConflictSessionIDs []string `json:"conflict_session_ids"`
}

type SessionReader interface {
	FindSessions(ctx context.Context, keys []schedule.SessionKey) (map[schedule.SessionKey]*schedule.Session, error)
}

type SessionValidator interface {
	// Validate never mutates state and is safe to call repeatedly.
	Validate(ctx context.Context, trainerID uuid.UUID, sessionIDs []string, bookerID *uuid.UUID) (*ValidationResult, error)
}

type sessionValidatorImpl struct {
	sessions SessionReader
}

func NewSessionValidator(sessions SessionReader) SessionValidator {
	return &sessionValidatorImpl{sessions: sessions}
}

func (v *sessionValidatorImpl) Validate(ctx context.Context, trainerID uuid.UUID, sessionIDs []string, bookerID *uuid.UUID) (*ValidationResult, error) {
	keys, err := schedule.ParseSessionIDs(sessionIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	found, err := v.sessions.FindSessions(ctx, keys)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load sessions for validation")
	}
	return EvaluateSessions(trainerID, keys, found, bookerID), nil
}

// EvaluateSessions classifies each key against the loaded sessions. Keys are reported in input order.
func EvaluateSessions(
	trainerID uuid.UUID,
	keys []schedule.SessionKey,
	found map[schedule.SessionKey]*schedule.Session,
	bookerID *uuid.UUID,
) *ValidationResult {
	res := &ValidationResult{
		InvalidSessionIDs:  []string{},
		MissingSessionIDs:  []string{},
		FullSessionIDs:     []string{},
		ConflictSessionIDs: []string{},
	}

	for _, key := range keys {
		id := key.ID()
		sess, ok := found[key]
		switch {
		case key.TrainerID != trainerID, !ok, !sess.IsConfigured():
			res.MissingSessionIDs = append(res.MissingSessionIDs, id)
		case bookerID != nil && sess.HasParticipant(*bookerID):
			res.ConflictSessionIDs = append(res.ConflictSessionIDs, id)
		case sess.IsFull():
			res.FullSessionIDs = append(res.FullSessionIDs, id)
		default:
			continue
		}
		res.InvalidSessionIDs = append(res.InvalidSessionIDs, id)
	}

	res.Valid = len(res.InvalidSessionIDs) == 0
	if !res.Valid {
		res.Reason = buildReason(res)
	}
	return res
}

func buildReason(res *ValidationResult) string {
	var causes []string
	if n := len(res.MissingSessionIDs); n > 0 {
		causes = append(causes, fmt.Sprintf("%d no longer offered", n))
	}
	if n := len(res.FullSessionIDs); n > 0 {
		causes = append(causes, fmt.Sprintf("%d full", n))
	}
	if n := len(res.ConflictSessionIDs); n > 0 {
		causes = append(causes, fmt.Sprintf("%d already booked", n))
	}
	return fmt.Sprintf("Session unavailable (%s), session id: %s",
		strings.Join(causes, "; "), strings.Join(res.InvalidSessionIDs, ", "))
}
