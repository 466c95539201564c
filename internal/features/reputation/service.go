// Package reputation — service.go содержит бизнес-логику репутации.
package reputation

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"discord-rep-bot/internal/common"
	"discord-rep-bot/internal/config"
)

// Service управляет системой репутации.
type Service struct {
	store     Store
	cooldowns *CooldownTracker
	cfg       *config.Config
}

// NewService создаёт сервис репутации.
func NewService(store Store, cfg *config.Config) *Service {
	return &Service{
		store:     store,
		cooldowns: NewCooldownTracker(cfg.RepCooldown),
		cfg:       cfg,
	}
}

// Award даёт +1 репутации to от имени from. Возвращает новый счёт.
// Самому себе давать нельзя — проверка здесь дублирует классификатор,
// чтобы хранилище было защищено независимо от пути вызова.
//
// Кулдаун НЕ проверяется: одно сообщение с несколькими упоминаниями — это
// несколько Award под одним кулдауном, поэтому проверка и отметка кулдауна
// лежат на вызывающем (CooldownRemaining / MarkAwarded).
func (s *Service) Award(ctx context.Context, guildID, from, to snowflake.ID) (int, error) {
	if from == to {
		return 0, common.ErrSelfAward
	}
	return s.store.Increment(ctx, guildID, to)
}

// Reputation возвращает репутацию участника. Нет записи — 0.
func (s *Service) Reputation(ctx context.Context, guildID, userID snowflake.ID) (int, error) {
	return s.store.Get(ctx, guildID, userID)
}

// Leaderboard возвращает топ сервера размером из конфига.
func (s *Service) Leaderboard(ctx context.Context, guildID snowflake.ID) ([]Entry, error) {
	return s.store.Top(ctx, guildID, s.cfg.RepLeaderboardSize)
}

// CooldownRemaining возвращает остаток кулдауна дающего. 0 — можно давать.
func (s *Service) CooldownRemaining(giverID snowflake.ID) time.Duration {
	return s.cooldowns.Remaining(giverID)
}

// MarkAwarded запускает кулдаун дающего. Вызывается один раз на событие,
// даже если репутацию получили несколько упомянутых.
func (s *Service) MarkAwarded(giverID snowflake.ID) {
	s.cooldowns.Touch(giverID)
}
