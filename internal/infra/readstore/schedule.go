package readstore

import (
	"context"

	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleViewQueries interface {
	GetSession(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSessionParams) (sqlc.Sessions, error)
	ListSessionsByTrainer(ctx context.Context, db sqlc.DBTX, trainerID uuid.UUID) ([]sqlc.Sessions, error)
	ListParticipantsBySession(ctx context.Context, db sqlc.DBTX, arg sqlc.ListParticipantsBySessionParams) ([]sqlc.SessionParticipants, error)
	ListParticipantsByTrainer(ctx context.Context, db sqlc.DBTX, trainerID uuid.UUID) ([]sqlc.SessionParticipants, error)
}

type ScheduleReadStore struct {
	queries ScheduleViewQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleViewQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) FindSession(ctx context.Context, key schedule.SessionKey) (*schedule.Session, error) {
	row, err := r.queries.GetSession(ctx, r.db, sqlc.GetSessionParams{
		TrainerID: key.TrainerID,
		Day:       key.Day.String(),
		TimeOfDay: key.Time.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get session", err)
	}
	participants, err := r.queries.ListParticipantsBySession(ctx, r.db, sqlc.ListParticipantsBySessionParams{
		TrainerID: key.TrainerID,
		Day:       key.Day.String(),
		TimeOfDay: key.Time.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session participants", err)
	}
	s, err := converter.SessionFromRow(row, participants)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert session row", err, infra.KindDBFailure)
	}
	return s, nil
}

// FindSessions omits keys with no stored row.
func (r *ScheduleReadStore) FindSessions(ctx context.Context, keys []schedule.SessionKey) (map[schedule.SessionKey]*schedule.Session, error) {
	out := make(map[schedule.SessionKey]*schedule.Session, len(keys))
	for _, key := range keys {
		if _, seen := out[key]; seen {
			continue
		}
		s, err := r.FindSession(ctx, key)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		out[key] = s
	}
	return out, nil
}

func (r *ScheduleReadStore) FindByTrainer(ctx context.Context, trainerID uuid.UUID) ([]*schedule.Session, error) {
	rows, err := r.queries.ListSessionsByTrainer(ctx, r.db, trainerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions by trainer", err)
	}
	participants, err := r.queries.ListParticipantsByTrainer(ctx, r.db, trainerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list participants by trainer", err)
	}

	type slot struct{ day, time string }
	bySlot := make(map[slot][]sqlc.SessionParticipants)
	for _, p := range participants {
		k := slot{p.Day, p.TimeOfDay}
		bySlot[k] = append(bySlot[k], p)
	}

	out := make([]*schedule.Session, 0, len(rows))
	for _, row := range rows {
		s, err := converter.SessionFromRow(row, bySlot[slot{row.Day, row.TimeOfDay}])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert session row", err, infra.KindDBFailure)
		}
		out = append(out, s)
	}
	return out, nil
}
