// Package config загружает конфигурацию бота из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- Discord ---
	DiscordBotToken string `envconfig:"DISCORD_BOT_TOKEN" required:"true"`
	// ID сервера (guild), к которому привязан бот. 0 = бот работает на любом сервере,
	// а slash-команды регистрируются глобально (Discord раскатывает их до часа).
	GuildID int64 `envconfig:"GUILD_ID" default:"0"`
	// Регистрировать ли slash-команды при старте. Регистрация идемпотентна,
	// выключай только если команды уже зарегистрированы отдельно.
	SyncCommands bool `envconfig:"SYNC_COMMANDS" default:"true"`

	// --- Database ---
	// В Docker внутри контейнера "localhost" почти всегда неправильно.
	// Дефолт ставим "postgres" (имя сервиса в docker-compose), а для локалки переопределяй DB_HOST=localhost.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"botuser"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"rep_bot"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"UTC"`

	// --- Bot runtime ---
	// Сколько событий обрабатываем параллельно. Иначе "go на каждое событие" = утечка памяти при флуде.
	BotMaxInflight int `envconfig:"BOT_MAX_INFLIGHT" default:"64"`

	// --- Reputation ---
	// Кулдаун на выдачу репутации (на дающего, не на получателя)
	RepCooldown time.Duration `envconfig:"REP_COOLDOWN" default:"60s"`
	// Размер топа для /rep action:leaderboard
	RepLeaderboardSize int `envconfig:"REP_LEADERBOARD_SIZE" default:"10"`

	// --- Digest ---
	// Канал для периодической публикации топа. 0 = дайджест выключен.
	DigestChannelID int64 `envconfig:"DIGEST_CHANNEL_ID" default:"0"`

	// --- Rate Limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Feature Flags ---
	FeatureMessageRepEnabled bool `envconfig:"FEATURE_MESSAGE_REP_ENABLED" default:"true"`
	FeatureDigestEnabled     bool `envconfig:"FEATURE_DIGEST_ENABLED" default:"false"`
}

// DatabaseDSN возвращает строку подключения к PostgreSQL в формате DSN.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) Validate() error {
	if c.BotMaxInflight <= 0 {
		return fmt.Errorf("BOT_MAX_INFLIGHT должен быть > 0")
	}
	if c.RepCooldown < 0 {
		return fmt.Errorf("REP_COOLDOWN не может быть отрицательным")
	}
	if c.RepLeaderboardSize <= 0 {
		return fmt.Errorf("REP_LEADERBOARD_SIZE должен быть > 0")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("некорректные DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.FeatureDigestEnabled && (c.DigestChannelID == 0 || c.GuildID == 0) {
		return fmt.Errorf("для дайджеста нужны DIGEST_CHANNEL_ID и GUILD_ID")
	}
	return nil
}

// Load читает переменные окружения и заполняет структуру Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("не удалось загрузить конфигурацию: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
