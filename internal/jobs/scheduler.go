// Package jobs управляет фоновыми задачами (cron).
// scheduler.go настраивает расписание: еженедельный дайджест топа репутации.
package jobs

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"discord-rep-bot/internal/config"
	"discord-rep-bot/internal/features/reputation"
)

// Scheduler управляет фоновыми задачами.
type Scheduler struct {
	cron       *cron.Cron
	repService *reputation.Service
	cfg        *config.Config
	sendFunc   func(channelID snowflake.ID, text string)
}

// NewScheduler создаёт планировщик задач с часовым поясом из конфига.
func NewScheduler(
	repService *reputation.Service,
	cfg *config.Config,
	sendFunc func(channelID snowflake.ID, text string),
) *Scheduler {
	loc, err := time.LoadLocation(cfg.AppTimezone)
	if err != nil {
		log.WithError(err).Warnf("Не удалось загрузить %s, используем UTC", cfg.AppTimezone)
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:       c,
		repService: repService,
		cfg:        cfg,
		sendFunc:   sendFunc,
	}
}

// Start запускает все фоновые задачи.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.cfg.FeatureDigestEnabled {
		log.Info("Дайджест выключен, фоновых задач нет")
		return
	}

	// Еженедельный дайджест: понедельник, 09:00
	s.cron.AddFunc("0 9 * * 1", func() {
		log.Info("[CRON] Публикация дайджеста репутации")
		if err := s.postDigest(ctx); err != nil {
			log.WithError(err).Error("[CRON] Ошибка дайджеста")
		}
	})

	s.cron.Start()
	log.WithField("timezone", s.cfg.AppTimezone).Info("Планировщик задач запущен")
}

// Stop останавливает планировщик.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Планировщик задач остановлен")
}

// postDigest публикует текущий топ в настроенный канал.
func (s *Scheduler) postDigest(ctx context.Context) error {
	entries, err := s.repService.Leaderboard(ctx, snowflake.ID(s.cfg.GuildID))
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		// Пустой сервер — нечего публиковать
		log.Debug("[CRON] Топ пуст, дайджест пропущен")
		return nil
	}

	s.sendFunc(snowflake.ID(s.cfg.DigestChannelID), reputation.FormatLeaderboard(entries))
	return nil
}
