//go:build unit || e2e

package builder

import (
	"testing"

	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/schedule"
	reqdto "trainer-booking/internal/handler/dto/request"
	"trainer-booking/internal/infra/repository/converter"
	sqlc "trainer-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type SessionBuilder struct {
	TrainerID    uuid.UUID
	Day          string
	Time         string
	ClassType    string
	Limit        *int32
	Price        string
	Participants []schedule.Participant
}

func NewSessionBuilder() *SessionBuilder {
	limit := int32(10)
	return &SessionBuilder{
		TrainerID: uuid.New(),
		Day:       "Monday",
		Time:      "09:00",
		ClassType: "strength",
		Limit:     &limit,
		Price:     "50",
	}
}

func (b *SessionBuilder) Key(t testing.TB) schedule.SessionKey {
	t.Helper()
	key, err := schedule.NewSessionKey(b.TrainerID, b.Day, b.Time)
	require.NoError(t, err)
	return key
}

func (b *SessionBuilder) SessionID(t testing.TB) string {
	t.Helper()
	return b.Key(t).ID()
}

// Build methods
func (b *SessionBuilder) BuildDomain(t testing.TB) *schedule.Session {
	t.Helper()
	capacity, err := schedule.CapacityFromLimit(b.Limit)
	require.NoError(t, err)
	price, err := money.ParsePrice(b.Price)
	require.NoError(t, err)
	return schedule.ReconstructSession(b.Key(t), b.ClassType, capacity, price, b.Participants)
}

// BuildRows renders the session and its participants as stored rows.
func (b *SessionBuilder) BuildRows(t testing.TB) (sqlc.Sessions, []sqlc.SessionParticipants) {
	t.Helper()
	sess := b.BuildDomain(t)
	up := converter.SessionToUpsertParams(sess)
	row := sqlc.Sessions{
		TrainerID:        up.TrainerID,
		Day:              up.Day,
		DayIndex:         up.DayIndex,
		TimeOfDay:        up.TimeOfDay,
		ClassType:        up.ClassType,
		ParticipantLimit: up.ParticipantLimit,
		ClassPriceCents:  up.ClassPriceCents,
	}
	participants := make([]sqlc.SessionParticipants, 0, len(b.Participants))
	for _, p := range sess.Participants() {
		in := converter.ParticipantToInsertParams(sess.Key(), p)
		participants = append(participants, sqlc.SessionParticipants{
			TrainerID: in.TrainerID,
			Day:       in.Day,
			TimeOfDay: in.TimeOfDay,
			BookerID:  in.BookerID,
			Accepted:  in.Accepted,
			Paid:      in.Paid,
			PaymentID: in.PaymentID,
		})
	}
	return row, participants
}

func (b *SessionBuilder) BuildPublishRequestDTO() reqdto.PublishSlotRequest {
	return reqdto.PublishSlotRequest{
		Day:              b.Day,
		Time:             b.Time,
		ClassType:        b.ClassType,
		ParticipantLimit: b.Limit,
		ClassPrice:       b.Price,
	}
}

// Fluent builder methods
func (b *SessionBuilder) WithTrainerID(id uuid.UUID) *SessionBuilder {
	b.TrainerID = id
	return b
}

func (b *SessionBuilder) WithSlot(day, timeOfDay string) *SessionBuilder {
	b.Day = day
	b.Time = timeOfDay
	return b
}

func (b *SessionBuilder) WithClassType(classType string) *SessionBuilder {
	b.ClassType = classType
	return b
}

func (b *SessionBuilder) WithLimit(limit int32) *SessionBuilder {
	b.Limit = &limit
	return b
}

func (b *SessionBuilder) Unlimited() *SessionBuilder {
	b.Limit = nil
	return b
}

func (b *SessionBuilder) WithPrice(price string) *SessionBuilder {
	b.Price = price
	return b
}

func (b *SessionBuilder) WithParticipant(bookerID uuid.UUID, paid bool) *SessionBuilder {
	p := schedule.Participant{BookerID: bookerID, Accepted: true, Paid: paid}
	if paid {
		p.PaymentID = "chrg_seed"
	}
	b.Participants = append(b.Participants, p)
	return b
}

// Unconfigured makes the slot look like one that was reset or never published.
func (b *SessionBuilder) Unconfigured() *SessionBuilder {
	b.ClassType = ""
	return b
}
