//go:build unit

package schedule_test

import (
	"testing"

	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, limit *int) *schedule.Session {
	t.Helper()
	key, err := schedule.NewSessionKey(uuid.New(), "Monday", "09:00")
	require.NoError(t, err)

	capacity := schedule.Unlimited()
	if limit != nil {
		capacity, err = schedule.Limited(*limit)
		require.NoError(t, err)
	}
	s, err := schedule.NewSession(key, "Yoga", capacity, money.NewPrice(money.MustParse("25.00")))
	require.NoError(t, err)
	return s
}

func intPtr(v int) *int { return &v }

func TestParseSessionID(t *testing.T) {
	trainer := uuid.MustParse("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")

	t.Run("round trip with hyphenated trainer id", func(t *testing.T) {
		key, err := schedule.NewSessionKey(trainer, "wednesday", "7:05")
		require.NoError(t, err)
		assert.Equal(t, "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed-Wednesday-07:05", key.ID())

		parsed, err := schedule.ParseSessionID(key.ID())
		require.NoError(t, err)
		assert.Equal(t, key, parsed)
	})

	for _, bad := range []string{
		"",
		"Monday-09:00",
		"not-a-uuid-Monday-09:00",
		trainer.String() + "-Funday-09:00",
		trainer.String() + "-Monday-24:00",
		trainer.String() + "-Monday-0900",
		trainer.String() + "-Monday-09:5",
	} {
		t.Run("reject "+bad, func(t *testing.T) {
			_, err := schedule.ParseSessionID(bad)
			assert.ErrorIs(t, err, schedule.ErrInvalidSessionID)
		})
	}
}

func TestParseSessionIDs(t *testing.T) {
	trainer := uuid.New()
	a := trainer.String() + "-Monday-09:00"
	b := trainer.String() + "-Tuesday-09:00"

	keys, err := schedule.ParseSessionIDs([]string{b, a})
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, schedule.KeyIDs(keys), "order is preserved")

	_, err = schedule.ParseSessionIDs(nil)
	assert.ErrorIs(t, err, schedule.ErrInvalidSessionID)

	_, err = schedule.ParseSessionIDs([]string{a, a})
	assert.ErrorIs(t, err, schedule.ErrInvalidSessionID)
}

func TestSessionKeyOrder(t *testing.T) {
	trainer := uuid.New()
	mon9, _ := schedule.NewSessionKey(trainer, "Monday", "09:00")
	mon18, _ := schedule.NewSessionKey(trainer, "Monday", "18:00")
	sun7, _ := schedule.NewSessionKey(trainer, "Sunday", "07:00")

	assert.True(t, mon9.Less(mon18))
	assert.True(t, mon18.Less(sun7))
	assert.False(t, sun7.Less(mon9))
	assert.False(t, mon9.Less(mon9))
}

func TestCapacity(t *testing.T) {
	_, err := schedule.Limited(-1)
	assert.ErrorIs(t, err, schedule.ErrInvalidCapacity)

	zero, err := schedule.Limited(0)
	require.NoError(t, err)
	assert.True(t, zero.IsFull(0))

	two, _ := schedule.Limited(2)
	assert.False(t, two.IsFull(1))
	assert.True(t, two.IsFull(2))
	assert.Equal(t, int32(2), *two.LimitPtr())

	assert.False(t, schedule.Unlimited().IsFull(10_000))
	assert.Nil(t, schedule.Unlimited().LimitPtr())

	fromNil, err := schedule.CapacityFromLimit(nil)
	require.NoError(t, err)
	assert.True(t, fromNil.IsUnlimited())
}

func TestReserve(t *testing.T) {
	t.Run("fills up to the limit", func(t *testing.T) {
		s := newSession(t, intPtr(1))
		first, second := uuid.New(), uuid.New()

		require.NoError(t, s.Reserve(first))
		err := s.Reserve(second)
		require.ErrorIs(t, err, schedule.ErrCapacityExceeded)

		var capErr *schedule.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, s.ID(), capErr.SessionID)
		assert.Equal(t, 1, s.ParticipantCount())
	})

	t.Run("existing participant is a no-op even when full", func(t *testing.T) {
		s := newSession(t, intPtr(1))
		booker := uuid.New()
		require.NoError(t, s.Reserve(booker))
		require.NoError(t, s.MarkPaid(booker, "chrg_1"))

		require.NoError(t, s.Reserve(booker))
		p, ok := s.Participant(booker)
		require.True(t, ok)
		assert.True(t, p.Paid, "re-reserving must not reset payment")
	})

	t.Run("unlimited", func(t *testing.T) {
		s := newSession(t, nil)
		for range 50 {
			require.NoError(t, s.Reserve(uuid.New()))
		}
		assert.Equal(t, 50, s.ParticipantCount())
	})
}

func TestReserveAllIsAllOrNothing(t *testing.T) {
	open := newSession(t, intPtr(3))
	full := newSession(t, intPtr(1))
	require.NoError(t, full.Reserve(uuid.New()))

	booker := uuid.New()
	err := schedule.ReserveAll([]*schedule.Session{open, full}, booker)
	require.ErrorIs(t, err, schedule.ErrCapacityExceeded)

	assert.False(t, open.HasParticipant(booker), "no session in the batch is mutated")
	assert.Equal(t, 0, open.ParticipantCount())

	require.NoError(t, schedule.ReserveAll([]*schedule.Session{open}, booker))
	assert.True(t, open.HasParticipant(booker))
}

func TestMarkPaid(t *testing.T) {
	a := newSession(t, nil)
	b := newSession(t, nil)
	booker := uuid.New()
	require.NoError(t, a.Reserve(booker))

	err := schedule.MarkAllPaid([]*schedule.Session{a, b}, booker, "chrg_1")
	require.ErrorIs(t, err, schedule.ErrParticipantNotFound)
	p, _ := a.Participant(booker)
	assert.False(t, p.Paid)

	require.NoError(t, b.Reserve(booker))
	require.NoError(t, schedule.MarkAllPaid([]*schedule.Session{a, b}, booker, "chrg_1"))
	p, _ = b.Participant(booker)
	assert.True(t, p.Paid)
	assert.Equal(t, "chrg_1", p.PaymentID)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newSession(t, intPtr(2))
	booker, other := uuid.New(), uuid.New()
	require.NoError(t, s.Reserve(booker))
	require.NoError(t, s.Reserve(other))

	assert.True(t, s.Remove(booker))
	assert.False(t, s.Remove(booker))
	assert.Equal(t, 1, s.ParticipantCount())
	assert.True(t, s.HasParticipant(other))
}

func TestUpdateAndReset(t *testing.T) {
	s := newSession(t, intPtr(3))
	require.NoError(t, s.Reserve(uuid.New()))
	require.NoError(t, s.Reserve(uuid.New()))

	one, _ := schedule.Limited(1)
	assert.ErrorIs(t, s.Update("Pilates", one, money.Free()), schedule.ErrCapacityBelowParticipants)
	assert.ErrorIs(t, s.Update(" ", schedule.Unlimited(), money.Free()), schedule.ErrClassTypeRequired)

	require.NoError(t, s.Update("Pilates", schedule.Unlimited(), money.Free()))
	assert.Equal(t, "Pilates", s.ClassType())
	assert.True(t, s.Price().IsFree())

	key := s.Key()
	s.Reset()
	assert.False(t, s.IsConfigured())
	assert.Equal(t, key, s.Key())
	assert.Equal(t, 2, s.ParticipantCount())
}
