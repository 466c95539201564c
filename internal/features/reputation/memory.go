// Package reputation — memory.go содержит хранилище в памяти.
// Используется в тестах вместо Postgres и подходит для локального запуска
// без базы (счётчики живут до рестарта процесса).
package reputation

import (
	"context"
	"sort"
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

type memKey struct {
	guild snowflake.ID
	user  snowflake.ID
}

// MemoryStore реализует Store поверх map под мьютексом.
// Инкремент атомарен: читать и писать счётчик можно только под замком.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[memKey]int
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[memKey]int)}
}

func (s *MemoryStore) Increment(_ context.Context, guildID, userID snowflake.ID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memKey{guild: guildID, user: userID}
	s.counts[key]++
	return s.counts[key], nil
}

func (s *MemoryStore) Get(_ context.Context, guildID, userID snowflake.ID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counts[memKey{guild: guildID, user: userID}], nil
}

func (s *MemoryStore) Top(_ context.Context, guildID snowflake.ID, n int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Entry
	for key, count := range s.counts {
		if key.guild == guildID {
			out = append(out, Entry{UserID: key.user, Count: count})
		}
	}

	// Тот же порядок, что и в SQL: по убыванию счёта, тай-брейк по user_id
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].UserID < out[j].UserID
	})

	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}
