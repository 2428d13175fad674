package commands

import (
	"context"

	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/pkg/errs"
	"trainer-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type PublishSessionInput struct {
	TrainerID        uuid.UUID
	Day              string
	Time             string
	ClassType        string
	ParticipantLimit *int32
	ClassPrice       string
}

type ScheduleCommands interface {
	// PublishSession creates or redefines one slot of a trainer's week.
	PublishSession(ctx context.Context, actor shared.Actor, in PublishSessionInput) (*schedule.Session, error)
	ResetSlot(ctx context.Context, actor shared.Actor, trainerID uuid.UUID, day, timeOfDay string) error
	ReserveParticipants(ctx context.Context, actor shared.Actor, sessionIDs []string, bookerID uuid.UUID) error
	MarkParticipantsPaid(ctx context.Context, actor shared.Actor, sessionIDs []string, bookerID uuid.UUID, paymentID string) error
	RemoveParticipants(ctx context.Context, actor shared.Actor, sessionIDs []string, bookerID uuid.UUID) error
}

type scheduleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleUseCase(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow}
}

func (uc *scheduleUseCaseImpl) PublishSession(ctx context.Context, actor shared.Actor, in PublishSessionInput) (*schedule.Session, error) {
	if !actor.Is(in.TrainerID) {
		return nil, ErrForbidden
	}
	key, err := schedule.NewSessionKey(in.TrainerID, in.Day, in.Time)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	capacity, err := schedule.CapacityFromLimit(in.ParticipantLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	price, err := money.ParsePrice(in.ClassPrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	ctx, span := startSpan(ctx, "ScheduleCommands.PublishSession", attribute.String("session.id", key.ID()))
	var saved *schedule.Session
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, derr := tx.Sessions().LockByKey(ctx, key)
		switch {
		case infra.IsKind(derr, infra.KindNotFound):
			sess, derr = schedule.NewSession(key, in.ClassType, capacity, price)
			if derr != nil {
				return errs.Mark(derr, errs.ErrValidation)
			}
		case derr != nil:
			return derr
		default:
			if derr = sess.Update(in.ClassType, capacity, price); derr != nil {
				return errs.Mark(derr, errs.ErrValidation)
			}
		}
		if derr = tx.Sessions().Save(ctx, sess); derr != nil {
			return derr
		}
		saved = sess
		return nil
	})
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (uc *scheduleUseCaseImpl) ResetSlot(ctx context.Context, actor shared.Actor, trainerID uuid.UUID, day, timeOfDay string) error {
	if !actor.Is(trainerID) {
		return ErrForbidden
	}
	key, err := schedule.NewSessionKey(trainerID, day, timeOfDay)
	if err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, derr := tx.Sessions().LockByKey(ctx, key)
		if derr != nil {
			return mapSessionErr(derr)
		}
		sess.Reset()
		return tx.Sessions().Save(ctx, sess)
	})
}

func (uc *scheduleUseCaseImpl) ReserveParticipants(ctx context.Context, actor shared.Actor, sessionIDs []string, bookerID uuid.UUID) error {
	keys, err := parseOwnedKeys(actor, sessionIDs)
	if err != nil {
		return err
	}
	ctx, span := startSpan(ctx, "ScheduleCommands.ReserveParticipants", attribute.StringSlice("session.ids", sessionIDs))
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sessions, derr := lockSessions(ctx, tx, keys)
		if derr != nil {
			return derr
		}
		if derr = schedule.ReserveAll(sessions, bookerID); derr != nil {
			return derr
		}
		return saveSessions(ctx, tx, sessions)
	})
	endSpan(span, err)
	return err
}

func (uc *scheduleUseCaseImpl) MarkParticipantsPaid(ctx context.Context, actor shared.Actor, sessionIDs []string, bookerID uuid.UUID, paymentID string) error {
	keys, err := parseOwnedKeys(actor, sessionIDs)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sessions, derr := lockSessions(ctx, tx, keys)
		if derr != nil {
			return derr
		}
		if derr = schedule.MarkAllPaid(sessions, bookerID, paymentID); derr != nil {
			return derr
		}
		return saveSessions(ctx, tx, sessions)
	})
}

func (uc *scheduleUseCaseImpl) RemoveParticipants(ctx context.Context, actor shared.Actor, sessionIDs []string, bookerID uuid.UUID) error {
	keys, err := parseOwnedKeys(actor, sessionIDs)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return releaseParticipant(ctx, tx, keys, bookerID)
	})
}

func parseOwnedKeys(actor shared.Actor, sessionIDs []string) ([]schedule.SessionKey, error) {
	keys, err := schedule.ParseSessionIDs(sessionIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	for _, k := range keys {
		if !actor.Is(k.TrainerID) {
			return nil, ErrForbidden
		}
	}
	return keys, nil
}

func lockSessions(ctx context.Context, tx shared.Tx, keys []schedule.SessionKey) ([]*schedule.Session, error) {
	sessions, err := tx.Sessions().LockByKeys(ctx, keys)
	if err != nil {
		return nil, mapSessionErr(err)
	}
	return sessions, nil
}

func saveSessions(ctx context.Context, tx shared.Tx, sessions []*schedule.Session) error {
	for _, s := range sessions {
		if err := tx.Sessions().Save(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// releaseParticipant removes the booker from every listed session that still exists.
func releaseParticipant(ctx context.Context, tx shared.Tx, keys []schedule.SessionKey, bookerID uuid.UUID) error {
	return removeParticipant(ctx, tx, keys, bookerID, func(schedule.Participant) bool { return true })
}

// releaseUnpaid leaves paid entries alone: those seats belong to the booker's paid booking.
func releaseUnpaid(ctx context.Context, tx shared.Tx, keys []schedule.SessionKey, bookerID uuid.UUID) error {
	return removeParticipant(ctx, tx, keys, bookerID, func(p schedule.Participant) bool { return !p.Paid })
}

func removeParticipant(ctx context.Context, tx shared.Tx, keys []schedule.SessionKey, bookerID uuid.UUID, match func(schedule.Participant) bool) error {
	found, err := tx.Reads().SessionsByKeys(ctx, keys)
	if err != nil {
		return err
	}
	present := make([]schedule.SessionKey, 0, len(keys))
	for _, k := range keys {
		if s, ok := found[k]; ok {
			if p, held := s.Participant(bookerID); held && match(p) {
				present = append(present, k)
			}
		}
	}
	if len(present) == 0 {
		return nil
	}
	sessions, err := lockSessions(ctx, tx, present)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		p, held := s.Participant(bookerID)
		if !held || !match(p) {
			continue
		}
		s.Remove(bookerID)
		if err := tx.Sessions().Save(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func mapSessionErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrSessionNotFound)
	}
	return err
}
