// Package bot содержит главный модуль бота — инициализацию, запуск и остановку.
// bot.go создаёт Discord-клиент, регистрирует slash-команды и раздаёт
// события обработчикам.
package bot

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/snowflake/v2"
	log "github.com/sirupsen/logrus"

	"discord-rep-bot/internal/bot/filters"
	"discord-rep-bot/internal/bot/middleware"
	"discord-rep-bot/internal/config"
	"discord-rep-bot/internal/features/reputation"
)

// CommandName — имя slash-команды бота.
const CommandName = "rep"

// Bot — главная структура бота, объединяющая все компоненты.
type Bot struct {
	client bot.Client
	cfg    *config.Config

	guildFilter *filters.GuildFilter
	rateLimiter *middleware.RateLimiter

	repHandler *reputation.Handler

	// контекст обработки событий, выставляется в Start
	runCtx context.Context

	// ограничитель параллелизма обработки событий
	inflight chan struct{}
}

// New создаёт новый экземпляр бота со всеми зависимостями.
func New(
	cfg *config.Config,
	repHandler *reputation.Handler,
	guildFilter *filters.GuildFilter,
) (*Bot, error) {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	b := &Bot{
		cfg:         cfg,
		guildFilter: guildFilter,
		rateLimiter: middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		repHandler:  repHandler,
		runCtx:      context.Background(),
		inflight:    make(chan struct{}, maxInFlight),
	}

	client, err := disgo.New(cfg.DiscordBotToken,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentMessageContent,
			),
			gateway.WithPresenceOpts(
				gateway.WithWatchingActivity("reputation points"),
				gateway.WithOnlineStatus(discord.OnlineStatusOnline),
			),
		),
		bot.WithEventListeners(&events.ListenerAdapter{
			OnApplicationCommandInteraction: b.onCommand,
			OnMessageCreate:                 b.onMessage,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Discord-клиента: %w", err)
	}

	b.client = client
	return b, nil
}

// Start регистрирует slash-команды и открывает gateway-соединение.
func (b *Bot) Start(ctx context.Context) error {
	b.runCtx = ctx

	if b.cfg.SyncCommands {
		if err := b.registerCommands(ctx); err != nil {
			return err
		}
	} else {
		log.Info("SYNC_COMMANDS выключен, пропускаем регистрацию команд")
	}

	log.WithFields(log.Fields{
		"max_inflight": b.cfg.BotMaxInflight,
		"guild_id":     b.cfg.GuildID,
	}).Info("Бот запущен и ожидает события...")

	return b.client.OpenGateway(ctx)
}

// Close закрывает gateway-соединение и останавливает фоновые горутины.
func (b *Bot) Close(ctx context.Context) {
	b.client.Close(ctx)
	b.rateLimiter.Close()
	log.Info("Gateway-соединение закрыто")
}

// registerCommands объявляет команду /rep. Регистрация идемпотентна:
// Discord заменяет набор команд целиком.
func (b *Bot) registerCommands(ctx context.Context) error {
	commands := []discord.ApplicationCommandCreate{
		discord.SlashCommandCreate{
			Name:        CommandName,
			Description: "Give or view reputation points",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{
					Name:        "user",
					Description: "The user to give reputation to (or whose profile to view)",
					Required:    false,
				},
				discord.ApplicationCommandOptionString{
					Name:        "action",
					Description: "What to do instead of giving reputation",
					Required:    false,
					Choices: []discord.ApplicationCommandOptionChoiceString{
						{Name: "leaderboard", Value: reputation.ActionLeaderboard},
						{Name: "profile", Value: reputation.ActionProfile},
					},
				},
			},
		},
	}

	if b.cfg.GuildID != 0 {
		// Guild-команды появляются мгновенно — удобно для одиночного сервера
		_, err := b.client.Rest().SetGuildCommands(
			b.client.ApplicationID(), snowflake.ID(b.cfg.GuildID), commands,
		)
		if err != nil {
			return fmt.Errorf("ошибка регистрации guild-команд: %w", err)
		}
		log.WithField("guild_id", b.cfg.GuildID).Info("Команды зарегистрированы на сервере")
		return nil
	}

	// Глобальные команды Discord раскатывает до часа
	_, err := b.client.Rest().SetGlobalCommands(b.client.ApplicationID(), commands)
	if err != nil {
		return fmt.Errorf("ошибка регистрации глобальных команд: %w", err)
	}
	log.Info("Команды зарегистрированы глобально")
	return nil
}

// onCommand обрабатывает вызов slash-команды.
func (b *Bot) onCommand(event *events.ApplicationCommandInteractionCreate) {
	b.inflight <- struct{}{}
	go func() {
		defer func() { <-b.inflight }()
		defer middleware.RecoverFromPanic()

		if event.SlashCommandInteractionData().CommandName() != CommandName {
			return
		}
		if !b.guildFilter.Allow(event.GuildID()) {
			return
		}

		b.repHandler.HandleCommand(b.runCtx, event)
	}()
}

// onMessage обрабатывает обычное сообщение (поиск благодарностей).
func (b *Bot) onMessage(event *events.MessageCreate) {
	if !b.cfg.FeatureMessageRepEnabled {
		return
	}

	b.inflight <- struct{}{}
	go func() {
		defer func() { <-b.inflight }()
		defer middleware.RecoverFromPanic()

		middleware.LogMessage(event)

		if !b.guildFilter.Allow(event.GuildID) {
			return
		}

		// Rate limiting
		if !b.rateLimiter.Allow(event.Message.Author.ID) {
			log.WithField("user_id", event.Message.Author.ID).Debug("rate limited")
			return
		}

		b.repHandler.HandleMessage(b.runCtx, event)
	}()
}

// SendMessageToChannel отправляет сообщение в канал (для дайджеста).
func (b *Bot) SendMessageToChannel(channelID snowflake.ID, text string) {
	_, err := b.client.Rest().CreateMessage(
		channelID,
		discord.NewMessageCreateBuilder().SetContent(text).Build(),
	)
	if err != nil {
		log.WithError(err).WithField("channel_id", channelID).Error("Ошибка отправки сообщения")
	} else {
		log.WithField("channel_id", channelID).Debug("message sent")
	}
}
