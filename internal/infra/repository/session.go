package repository

import (
	"context"
	"sort"

	"trainer-booking/internal/domain/schedule"
	"trainer-booking/internal/infra"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
)

type SessionWriteQueries interface {
	LockSession(ctx context.Context, db sqlc.DBTX, arg sqlc.LockSessionParams) (sqlc.Sessions, error)
	UpsertSession(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSessionParams) error
	ListParticipantsBySession(ctx context.Context, db sqlc.DBTX, arg sqlc.ListParticipantsBySessionParams) ([]sqlc.SessionParticipants, error)
	DeleteParticipantsBySession(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteParticipantsBySessionParams) error
	InsertParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertParticipantParams) error
}

type SessionRepository struct {
	queries SessionWriteQueries
	db      sqlc.DBTX
}

func NewSessionRepository(queries SessionWriteQueries, db sqlc.DBTX) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
	}
}

// LockByKeys takes row locks in key order so concurrent batches never deadlock each other.
func (r *SessionRepository) LockByKeys(ctx context.Context, keys []schedule.SessionKey) ([]*schedule.Session, error) {
	ordered := make([]schedule.SessionKey, len(keys))
	copy(ordered, keys)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Less(ordered[j]) })

	locked := make(map[schedule.SessionKey]*schedule.Session, len(keys))
	for _, key := range ordered {
		if _, done := locked[key]; done {
			continue
		}
		s, err := r.LockByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		locked[key] = s
	}

	out := make([]*schedule.Session, 0, len(keys))
	for _, key := range keys {
		out = append(out, locked[key])
	}
	return out, nil
}

func (r *SessionRepository) LockByKey(ctx context.Context, key schedule.SessionKey) (*schedule.Session, error) {
	row, err := r.queries.LockSession(ctx, r.db, sqlc.LockSessionParams{
		TrainerID: key.TrainerID,
		Day:       key.Day.String(),
		TimeOfDay: key.Time.String(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock session "+key.ID(), err)
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

func (r *SessionRepository) Save(ctx context.Context, s *schedule.Session) error {
	if err := r.queries.UpsertSession(ctx, r.db, converter.SessionToUpsertParams(s)); err != nil {
		return infra.WrapRepoErr("failed to upsert session", err)
	}
	key := s.Key()
	err := r.queries.DeleteParticipantsBySession(ctx, r.db, sqlc.DeleteParticipantsBySessionParams{
		TrainerID: key.TrainerID,
		Day:       key.Day.String(),
		TimeOfDay: key.Time.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to clear session participants", err)
	}
	for _, p := range s.Participants() {
		if err := r.queries.InsertParticipant(ctx, r.db, converter.ParticipantToInsertParams(key, p)); err != nil {
			return infra.WrapRepoErr("failed to insert session participant", err)
		}
	}
	return nil
}
