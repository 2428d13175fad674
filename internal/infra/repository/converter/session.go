package converter

import (
	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/schedule"
	sqlc "trainer-booking/internal/infra/sqlc/generated"
	"trainer-booking/internal/pkg/pgconv"
)

func SessionFromRow(row sqlc.Sessions, participants []sqlc.SessionParticipants) (*schedule.Session, error) {
	key, err := schedule.NewSessionKey(row.TrainerID, row.Day, row.TimeOfDay)
	if err != nil {
		return nil, err
	}
	capacity, err := schedule.CapacityFromLimit(pgconv.Int32PtrFromPgtype(row.ParticipantLimit))
	if err != nil {
		return nil, err
	}
	price, err := money.PriceFromCents(pgconv.Int64PtrFromPgtype(row.ClassPriceCents))
	if err != nil {
		return nil, err
	}
	ps := make([]schedule.Participant, 0, len(participants))
	for _, p := range participants {
		ps = append(ps, schedule.Participant{
			BookerID:  p.BookerID,
			Accepted:  p.Accepted,
			Paid:      p.Paid,
			PaymentID: pgconv.StringFromPgtype(p.PaymentID),
		})
	}
	return schedule.ReconstructSession(key, row.ClassType, capacity, price, ps), nil
}

func SessionToUpsertParams(s *schedule.Session) sqlc.UpsertSessionParams {
	key := s.Key()
	return sqlc.UpsertSessionParams{
		TrainerID:        key.TrainerID,
		Day:              key.Day.String(),
		DayIndex:         int16(key.Day.Index()), // #nosec G115 -- weekday index is 0..6
		TimeOfDay:        key.Time.String(),
		ClassType:        s.ClassType(),
		ParticipantLimit: pgconv.Int32PtrToPgtype(s.Capacity().LimitPtr()),
		ClassPriceCents:  pgconv.Int64PtrToPgtype(s.Price().CentsPtr()),
	}
}

func ParticipantToInsertParams(key schedule.SessionKey, p schedule.Participant) sqlc.InsertParticipantParams {
	return sqlc.InsertParticipantParams{
		TrainerID: key.TrainerID,
		Day:       key.Day.String(),
		TimeOfDay: key.Time.String(),
		BookerID:  p.BookerID,
		Accepted:  p.Accepted,
		Paid:      p.Paid,
		PaymentID: pgconv.OptionalStringToPgtype(p.PaymentID),
	}
}
