//go:build unit

package refund_test

import (
	"bytes"
	"testing"
	"time"

	"trainer-booking/internal/domain/booking"
	"trainer-booking/internal/domain/money"
	"trainer-booking/internal/domain/refund"
	"trainer-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	cases := []struct {
		total    string
		pct      int
		expected string
	}{
		{total: "100.00", pct: 75, expected: "75.00"},
		{total: "33.33", pct: 50, expected: "16.67"},
		{total: "200", pct: 50, expected: "100.00"},
		{total: "200", pct: 0, expected: "0.00"},
		{total: "19.99", pct: 25, expected: "5.00"},
		{total: "free", pct: 100, expected: "0.00"},
	}
	for _, tc := range cases {
		t.Run(tc.total, func(t *testing.T) {
			price, err := money.ParsePrice(tc.total)
			require.NoError(t, err)
			pct, err := refund.NewPercentage(tc.pct)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, refund.Compute(price, pct).String())
		})
	}
}

func TestNewPercentage(t *testing.T) {
	for _, v := range []int{0, 25, 50, 75, 100} {
		_, err := refund.NewPercentage(v)
		assert.NoError(t, err)
	}
	for _, v := range []int{-25, 10, 33, 101} {
		_, err := refund.NewPercentage(v)
		assert.ErrorIs(t, err, refund.ErrInvalidPercentage)
	}
}

func TestNewID(t *testing.T) {
	bookerID := uuid.MustParse("5f0c7a52-4d35-4b8e-9f1a-0c2f6f1b9e11")
	at := time.Date(2024, 5, 3, 23, 59, 0, 0, time.UTC)

	id, err := refund.NewID(bookerID, at, bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef}))
	require.NoError(t, err)
	assert.Equal(t, "5f0c7a52-4d35-4b8e-9f1a-0c2f6f1b9e11-20240503-deadbeef", id)

	_, err = refund.NewID(bookerID, at, bytes.NewReader([]byte{0x01}))
	assert.Error(t, err)
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("dropped booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithPrice("200").AsStarted().MustBuildDomain(t)
		require.NoError(t, b.Drop("injury", now))

		pct, _ := refund.NewPercentage(50)
		rec, err := refund.NewRecord(b, pct, now)
		require.NoError(t, err)

		assert.Equal(t, "100.00", rec.Amount.String())
		assert.Equal(t, b.ID(), rec.BookingID)
		assert.Equal(t, booking.PhaseDropped, rec.Snapshot.Phase)
		assert.Equal(t, "injury", rec.Reason)
		assert.True(t, rec.IssuesMoney())
		assert.Contains(t, rec.ID, b.BookerID().String()+"-20240201-")
		assert.Equal(t, refund.StatusPending, rec.Status)
	})

	t.Run("zero percent still produces a record", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithPrice("200").AsStarted().MustBuildDomain(t)
		require.NoError(t, b.Drop("no-show", now))

		rec, err := refund.NewRecord(b, refund.Percentage(0), now)
		require.NoError(t, err)
		assert.True(t, rec.Amount.IsZero())
		assert.False(t, rec.IssuesMoney())
	})

	t.Run("booking not dropped", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsStarted().MustBuildDomain(t)
		_, err := refund.NewRecord(b, refund.Percentage(100), now)
		assert.ErrorIs(t, err, refund.ErrNotDropped)
	})

	t.Run("ids are unique", func(t *testing.T) {
		b := builder.NewBookingBuilder().AsStarted().MustBuildDomain(t)
		require.NoError(t, b.Drop("moved away", now))
		first, err := refund.NewRecord(b, refund.Percentage(25), now)
		require.NoError(t, err)
		second, err := refund.NewRecord(b, refund.Percentage(25), now)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.IdempotencyKey(), second.IdempotencyKey())
		assert.Equal(t, "drop-"+b.ID().String(), first.IdempotencyKey())
	})
}
