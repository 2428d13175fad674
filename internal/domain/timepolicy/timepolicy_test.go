//go:build unit

package timepolicy_test

import (
	"testing"
	"time"

	"trainer-booking/internal/domain/timepolicy"

	"github.com/stretchr/testify/assert"
)

func TestRemainingTime(t *testing.T) {
	bookedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		elapsed  time.Duration
		expected timepolicy.Remaining
		text     string
	}{
		{
			name:     "just booked",
			elapsed:  0,
			expected: timepolicy.Remaining{Days: 7},
			text:     "7d 0h 0m left",
		},
		{
			name:     "one minute before expiry",
			elapsed:  7*24*time.Hour - time.Minute,
			expected: timepolicy.Remaining{Minutes: 1},
			text:     "0d 0h 1m left",
		},
		{
			name:     "seconds are truncated",
			elapsed:  7*24*time.Hour - 59*time.Second,
			expected: timepolicy.Remaining{},
			text:     "0d 0h 0m left",
		},
		{
			name:     "mixed units",
			elapsed:  2*24*time.Hour + 3*time.Hour + 30*time.Minute,
			expected: timepolicy.Remaining{Days: 4, Hours: 20, Minutes: 30},
			text:     "4d 20h 30m left",
		},
		{
			name:     "exactly seven days",
			elapsed:  7 * 24 * time.Hour,
			expected: timepolicy.Remaining{Expired: true},
			text:     "Expired",
		},
		{
			name:     "eight days",
			elapsed:  8 * 24 * time.Hour,
			expected: timepolicy.Remaining{Expired: true},
			text:     "Expired",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := timepolicy.RemainingTime(bookedAt, bookedAt.Add(tc.elapsed))
			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.text, actual.String())
			assert.Equal(t, tc.expected.Expired, timepolicy.IsExpired(bookedAt, bookedAt.Add(tc.elapsed)))
		})
	}
}

func TestEndDate(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), timepolicy.EndDate(start, 2))

	leap := time.Date(2024, 2, 22, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 7, 18, 30, 0, 0, time.UTC), timepolicy.EndDate(leap, 2))
}
