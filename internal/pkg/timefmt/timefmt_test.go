//go:build unit

package timefmt_test

import (
	"encoding/json"
	"testing"
	"time"

	"trainer-booking/internal/pkg/timefmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	want := time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "rfc3339", input: "2024-01-05T09:30:00Z", want: want},
		{name: "rfc3339 with offset", input: "2024-01-05T18:30:00+09:00", want: want},
		{name: "legacy dd-mm-yyyyTHH:mm", input: "05-01-2024T09:30", want: want},
		{name: "date only", input: "2024-01-05", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", input: "  05-01-2024T09:30 ", want: want},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timefmt.Parse(tc.input, time.UTC)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	t.Run("legacy value in a non-UTC zone", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		got, err := timefmt.Parse("05-01-2024T18:30", tokyo)
		require.NoError(t, err)
		assert.True(t, want.Equal(got))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := timefmt.Parse("yesterday", time.UTC)
		assert.ErrorIs(t, err, timefmt.ErrUnrecognizedFormat)
	})
}

func TestFormatLegacy(t *testing.T) {
	ts := time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "05-01-2024T09:30", timefmt.FormatLegacy(ts, nil))
}

func TestFlexibleJSON(t *testing.T) {
	var payload struct {
		At timefmt.Flexible  `json:"at"`
		Op *timefmt.Flexible `json:"op"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"05-01-2024T09:30","op":null}`), &payload))
	assert.Equal(t, time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC), payload.At.Time)
	assert.Nil(t, payload.Op.Ptr())

	out, err := json.Marshal(payload.At)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-05T09:30:00Z"`, string(out))
}
