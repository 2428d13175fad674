//go:build unit

package money_test

import (
	"testing"

	"trainer-booking/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		cents int64
		err   error
	}{
		{input: "200", cents: 20000},
		{input: "33.33", cents: 3333},
		{input: "0.5", cents: 50},
		{input: "0", cents: 0},
		{input: " 12.00 ", cents: 1200},
		{input: "-1", err: money.ErrNegativeAmount},
		{input: "1.234", err: money.ErrInvalidAmount},
		{input: "1.", err: money.ErrInvalidAmount},
		{input: ".5", err: money.ErrInvalidAmount},
		{input: "abc", err: money.ErrInvalidAmount},
		{input: "", err: money.ErrInvalidAmount},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			m, err := money.Parse(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cents, m.Cents())
		})
	}
}

func TestPercentHalfUp(t *testing.T) {
	assert.Equal(t, "75.00", money.MustParse("100.00").PercentHalfUp(75).String())
	assert.Equal(t, "16.67", money.MustParse("33.33").PercentHalfUp(50).String())
	assert.Equal(t, "0.01", money.MustParse("0.01").PercentHalfUp(50).String())
	assert.Equal(t, "0.00", money.MustParse("0.01").PercentHalfUp(25).String())
	assert.Equal(t, "100.00", money.MustParse("200").PercentHalfUp(50).String())
}

func TestPrice(t *testing.T) {
	t.Run("free sentinel", func(t *testing.T) {
		p, err := money.ParsePrice("FREE")
		require.NoError(t, err)
		assert.True(t, p.IsFree())
		assert.True(t, p.Amount().IsZero())
		assert.Nil(t, p.CentsPtr())
		assert.Equal(t, "free", p.String())
	})

	t.Run("decimal", func(t *testing.T) {
		p, err := money.ParsePrice("45.50")
		require.NoError(t, err)
		assert.False(t, p.IsFree())
		require.NotNil(t, p.CentsPtr())
		assert.Equal(t, int64(4550), *p.CentsPtr())
	})

	t.Run("from cents", func(t *testing.T) {
		p, err := money.PriceFromCents(nil)
		require.NoError(t, err)
		assert.True(t, p.IsFree())

		negative := int64(-1)
		_, err = money.PriceFromCents(&negative)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})
}
