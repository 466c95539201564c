package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLeaderboard(t *testing.T) {
	t.Run("empty leaderboard", func(t *testing.T) {
		assert.Equal(t,
			"🏆 No one has earned reputation yet. Be the first!",
			FormatLeaderboard(nil),
		)
	})

	t.Run("medals for the first three places", func(t *testing.T) {
		entries := []Entry{
			{UserID: testAlice, Count: 5},
			{UserID: testBob, Count: 3},
			{UserID: testCarol, Count: 2},
			{UserID: 400, Count: 1},
		}

		out := FormatLeaderboard(entries)
		assert.Contains(t, out, "🏆 **Reputation Leaderboard**")
		assert.Contains(t, out, "🥇 <@1> — **5** points")
		assert.Contains(t, out, "🥈 <@2> — **3** points")
		assert.Contains(t, out, "🥉 <@3> — **2** points")
		assert.Contains(t, out, "4. <@400> — **1** point")
	})

	t.Run("single point uses singular", func(t *testing.T) {
		out := FormatLeaderboard([]Entry{{UserID: testAlice, Count: 1}})
		assert.Contains(t, out, "**1** point\n")
		assert.NotContains(t, out, "**1** points")
	})
}
