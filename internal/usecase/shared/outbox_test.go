//go:build unit

package shared_test

import (
	"testing"
	"time"

	"trainer-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRetryPolicy(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := shared.OutboxRetryPolicy{MaxAttempts: 4, BaseDelay: time.Second, MaxDelay: 5 * time.Second}

	testCases := []struct {
		attempts int32
		want     time.Duration
	}{
		{attempts: 1, want: time.Second},
		{attempts: 2, want: 2 * time.Second},
		{attempts: 3, want: 4 * time.Second},
		{attempts: 4, want: 5 * time.Second},
		{attempts: 12, want: 5 * time.Second},
	}
	for _, tc := range testCases {
		assert.Equal(t, now.Add(tc.want), p.NextRunAt(now, tc.attempts), "attempts=%d", tc.attempts)
	}

	assert.False(t, p.Exhausted(3))
	assert.True(t, p.Exhausted(4))
	assert.False(t, shared.OutboxRetryPolicy{}.Exhausted(1000), "zero max attempts retries forever")
}

func TestActor(t *testing.T) {
	booker := shared.Actor{ID: uuid.New(), Role: shared.RoleMember}
	other := uuid.New()
	assert.True(t, booker.Is(booker.ID))
	assert.False(t, booker.Is(other))
	assert.True(t, booker.IsEither(other, booker.ID))
	assert.True(t, shared.SystemActor().Is(other))

	role, ok := shared.ParseRole("trainer")
	assert.True(t, ok)
	assert.Equal(t, shared.RoleTrainer, role)
	_, ok = shared.ParseRole("admin")
	assert.False(t, ok)
}
