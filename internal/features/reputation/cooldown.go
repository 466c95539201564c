// Package reputation — cooldown.go отслеживает кулдаун на выдачу репутации.
// Кулдаун считается на дающего: один человек не может раздавать очки чаще,
// чем раз в окно. Состояние живёт в памяти процесса, как и у оригинального
// rate-limiter'а — после рестарта кулдауны обнуляются, это приемлемо.
package reputation

import (
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// CooldownTracker хранит время последней выдачи репутации по каждому дающему.
type CooldownTracker struct {
	mu     sync.Mutex
	last   map[snowflake.ID]time.Time
	window time.Duration
}

// NewCooldownTracker создаёт трекер кулдаунов.
// window == 0 отключает кулдаун полностью.
func NewCooldownTracker(window time.Duration) *CooldownTracker {
	return &CooldownTracker{
		last:   make(map[snowflake.ID]time.Time),
		window: window,
	}
}

// Remaining возвращает, сколько осталось ждать дающему. 0 — можно давать.
func (t *CooldownTracker) Remaining(giverID snowflake.ID) time.Duration {
	if t.window == 0 {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	lastTime, ok := t.last[giverID]
	if !ok {
		return 0
	}

	elapsed := time.Since(lastTime)
	if elapsed >= t.window {
		// Запись протухла — подчищаем, чтобы map не рос бесконечно
		delete(t.last, giverID)
		return 0
	}
	return t.window - elapsed
}

// Touch отмечает, что дающий только что выдал репутацию.
func (t *CooldownTracker) Touch(giverID snowflake.ID) {
	if t.window == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.last[giverID] = time.Now()
}
