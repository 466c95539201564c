// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозиторий, сервис, обработчик
// и собирает всё в один объект Bot.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"discord-rep-bot/internal/bot"
	"discord-rep-bot/internal/bot/filters"
	"discord-rep-bot/internal/config"
	"discord-rep-bot/internal/db/postgres"
	"discord-rep-bot/internal/features/reputation"
	"discord-rep-bot/internal/jobs"
)

// App содержит все компоненты приложения.
type App struct {
	Bot       *bot.Bot
	Scheduler *jobs.Scheduler
	DB        *pgxpool.Pool
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := runMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Репозиторий, сервис, обработчик ===
	repRepo := reputation.NewRepository(pool)
	repService := reputation.NewService(repRepo, cfg)
	repHandler := reputation.NewHandler(repService)

	// === 3. Фильтры ===
	guildFilter := filters.NewGuildFilter(cfg.GuildID)

	// === 4. Собираем бота ===
	b, err := bot.New(cfg, repHandler, guildFilter)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	// === 5. Планировщик задач ===
	scheduler := jobs.NewScheduler(repService, cfg, b.SendMessageToChannel)

	return &App{
		Bot:       b,
		Scheduler: scheduler,
		DB:        pool,
	}, nil
}

// runMigrations выполняет все SQL-миграции.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	// Инициализируем систему миграций
	if err := postgres.EnsureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	// Выполняем миграции по порядку
	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Reputation},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		log.Infof("Миграция %d применена", m.version)
	}

	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.

var migration001Reputation = `
CREATE TABLE IF NOT EXISTS reputation (
    id BIGSERIAL PRIMARY KEY,
    guild_id BIGINT NOT NULL,
    user_id BIGINT NOT NULL,
    count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),
    UNIQUE (guild_id, user_id)
);
CREATE INDEX IF NOT EXISTS idx_reputation_guild_count ON reputation(guild_id, count DESC);
`
