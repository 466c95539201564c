package reputation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-rep-bot/internal/common"
	"discord-rep-bot/internal/config"
)

func newTestService(cooldown time.Duration) *Service {
	cfg := &config.Config{
		RepCooldown:        cooldown,
		RepLeaderboardSize: 10,
	}
	return NewService(NewMemoryStore(), cfg)
}

func TestServiceAward(t *testing.T) {
	ctx := context.Background()

	t.Run("increments and returns new count", func(t *testing.T) {
		svc := newTestService(0)

		count, err := svc.Award(ctx, testGuild, testAlice, testBob)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = svc.Award(ctx, testGuild, testCarol, testBob)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("rejects self award without touching the store", func(t *testing.T) {
		svc := newTestService(0)

		_, err := svc.Award(ctx, testGuild, testAlice, testAlice)
		assert.ErrorIs(t, err, common.ErrSelfAward)

		count, err := svc.Reputation(ctx, testGuild, testAlice)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("concurrent awards lose no increments", func(t *testing.T) {
		svc := newTestService(0)

		const awards = 100
		var wg sync.WaitGroup
		for i := 0; i < awards; i++ {
			wg.Add(1)
			giver := snowflake.ID(1000 + i)
			go func() {
				defer wg.Done()
				_, err := svc.Award(ctx, testGuild, giver, testBob)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		count, err := svc.Reputation(ctx, testGuild, testBob)
		require.NoError(t, err)
		assert.Equal(t, awards, count)
	})
}

func TestServiceReputation(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown member reads as zero", func(t *testing.T) {
		svc := newTestService(0)

		count, err := svc.Reputation(ctx, testGuild, testCarol)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("guilds are isolated", func(t *testing.T) {
		svc := newTestService(0)
		otherGuild := snowflake.ID(200)

		_, err := svc.Award(ctx, testGuild, testAlice, testBob)
		require.NoError(t, err)

		count, err := svc.Reputation(ctx, otherGuild, testBob)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		top, err := svc.Leaderboard(ctx, otherGuild)
		require.NoError(t, err)
		assert.Empty(t, top)
	})
}

func TestServiceLeaderboard(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by count with user id tie break", func(t *testing.T) {
		cfg := &config.Config{RepLeaderboardSize: 3}
		svc := NewService(NewMemoryStore(), cfg)

		counts := map[snowflake.ID]int{
			testAlice:         5,
			testBob:           3,
			testCarol:         3,
			snowflake.ID(400): 1,
		}
		for userID, n := range counts {
			for i := 0; i < n; i++ {
				_, err := svc.Award(ctx, testGuild, snowflake.ID(999), userID)
				require.NoError(t, err)
			}
		}

		top, err := svc.Leaderboard(ctx, testGuild)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{UserID: testAlice, Count: 5},
			{UserID: testBob, Count: 3},
			{UserID: testCarol, Count: 3},
		}, top)
	})

	t.Run("empty guild yields empty leaderboard", func(t *testing.T) {
		svc := newTestService(0)

		top, err := svc.Leaderboard(ctx, testGuild)
		require.NoError(t, err)
		assert.Empty(t, top)
	})
}

func TestServiceEndToEnd(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(0)

	for i := 0; i < 3; i++ {
		_, err := svc.Award(ctx, testGuild, testAlice, testBob)
		require.NoError(t, err)
	}
	_, err := svc.Award(ctx, testGuild, testAlice, testCarol)
	require.NoError(t, err)

	count, err := svc.Reputation(ctx, testGuild, testBob)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	top, err := svc.Leaderboard(ctx, testGuild)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{UserID: testBob, Count: 3},
		{UserID: testCarol, Count: 1},
	}, top)
}

func TestServiceCooldown(t *testing.T) {
	t.Run("mark starts the window", func(t *testing.T) {
		svc := newTestService(time.Minute)

		assert.Zero(t, svc.CooldownRemaining(testAlice))

		svc.MarkAwarded(testAlice)
		remaining := svc.CooldownRemaining(testAlice)
		assert.Greater(t, remaining, 50*time.Second)

		// кулдаун персонален
		assert.Zero(t, svc.CooldownRemaining(testBob))
	})

	t.Run("zero window disables cooldown", func(t *testing.T) {
		svc := newTestService(0)

		svc.MarkAwarded(testAlice)
		assert.Zero(t, svc.CooldownRemaining(testAlice))
	})
}
