package middleware

import (
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	user := snowflake.ID(42)

	t.Run("allows up to the limit", func(t *testing.T) {
		rl := NewRateLimiter(3, time.Minute)
		defer rl.Close()

		for i := 0; i < 3; i++ {
			assert.True(t, rl.Allow(user))
		}
		assert.False(t, rl.Allow(user))
	})

	t.Run("users are tracked separately", func(t *testing.T) {
		rl := NewRateLimiter(1, time.Minute)
		defer rl.Close()

		assert.True(t, rl.Allow(user))
		assert.False(t, rl.Allow(user))
		assert.True(t, rl.Allow(snowflake.ID(43)))
	})

	t.Run("window slides", func(t *testing.T) {
		rl := NewRateLimiter(1, 20*time.Millisecond)
		defer rl.Close()

		assert.True(t, rl.Allow(user))
		assert.False(t, rl.Allow(user))

		time.Sleep(30 * time.Millisecond)
		assert.True(t, rl.Allow(user))
	})

	t.Run("close is idempotent", func(t *testing.T) {
		rl := NewRateLimiter(1, time.Minute)
		rl.Close()
		rl.Close()
	})
}
