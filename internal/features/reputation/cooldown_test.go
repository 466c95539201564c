package reputation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldownTracker(t *testing.T) {
	t.Run("untouched giver has no cooldown", func(t *testing.T) {
		tracker := NewCooldownTracker(time.Minute)
		assert.Zero(t, tracker.Remaining(testAlice))
	})

	t.Run("touch starts the window", func(t *testing.T) {
		tracker := NewCooldownTracker(time.Minute)
		tracker.Touch(testAlice)

		remaining := tracker.Remaining(testAlice)
		assert.Greater(t, remaining, time.Duration(0))
		assert.LessOrEqual(t, remaining, time.Minute)
	})

	t.Run("window expires", func(t *testing.T) {
		tracker := NewCooldownTracker(20 * time.Millisecond)
		tracker.Touch(testAlice)

		assert.Greater(t, tracker.Remaining(testAlice), time.Duration(0))

		time.Sleep(30 * time.Millisecond)
		assert.Zero(t, tracker.Remaining(testAlice))
	})

	t.Run("givers do not share cooldowns", func(t *testing.T) {
		tracker := NewCooldownTracker(time.Minute)
		tracker.Touch(testAlice)

		assert.Zero(t, tracker.Remaining(testBob))
	})

	t.Run("zero window disables tracking", func(t *testing.T) {
		tracker := NewCooldownTracker(0)
		tracker.Touch(testAlice)

		assert.Zero(t, tracker.Remaining(testAlice))
	})

	t.Run("repeated touch restarts the window", func(t *testing.T) {
		tracker := NewCooldownTracker(50 * time.Millisecond)
		tracker.Touch(testAlice)

		time.Sleep(30 * time.Millisecond)
		tracker.Touch(testAlice)

		time.Sleep(30 * time.Millisecond)
		// с момента второго Touch прошло меньше окна
		assert.Greater(t, tracker.Remaining(testAlice), time.Duration(0))
	})
}
