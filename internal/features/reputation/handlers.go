// Package reputation — handlers.go обрабатывает команду /rep и благодарности
// в обычных сообщениях. Переводит события Discord в нейтральные события
// классификатора и исполняет его решения.
package reputation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	log "github.com/sirupsen/logrus"

	"discord-rep-bot/internal/common"
)

// Handler обрабатывает события репутации.
type Handler struct {
	service *Service
}

// NewHandler создаёт обработчик репутации.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleCommand обрабатывает вызов /rep.
func (h *Handler) HandleCommand(ctx context.Context, event *events.ApplicationCommandInteractionCreate) {
	if event.GuildID() == nil {
		h.replyEphemeral(event, "⚠️ This command only works inside a server.")
		return
	}

	data := event.SlashCommandInteractionData()

	ev := CommandEvent{
		GuildID:   *event.GuildID(),
		InvokerID: event.User().ID,
	}
	targetIsBot := false
	if user, ok := data.OptUser("user"); ok {
		ev.TargetID = user.ID
		targetIsBot = user.Bot
	}
	if action, ok := data.OptString("action"); ok {
		ev.Action = action
	}

	decision := ClassifyCommand(ev)
	switch decision.Kind {
	case DecideRejectSelfAward:
		// ValidationError: отвечаем сразу, в хранилище не ходим
		h.replyEphemeral(event, "⚠️ You cannot give reputation points to yourself.")

	case DecideAward:
		h.handleAward(ctx, event, ev, decision.Subject, targetIsBot)

	case DecideProfile:
		h.handleProfile(ctx, event, ev.GuildID, decision.Subject)

	case DecideLeaderboard:
		h.handleLeaderboard(ctx, event, ev.GuildID)

	default:
		h.replyEphemeral(event, "⚠️ Unknown action.")
	}
}

// handleAward — ветка «дать репутацию» команды /rep.
func (h *Handler) handleAward(
	ctx context.Context,
	event *events.ApplicationCommandInteractionCreate,
	ev CommandEvent,
	target snowflake.ID,
	targetIsBot bool,
) {
	if targetIsBot {
		h.replyEphemeral(event, "⚠️ You cannot give reputation points to bots.")
		return
	}

	if remaining := h.service.CooldownRemaining(ev.InvokerID); remaining > 0 {
		h.replyEphemeral(event, fmt.Sprintf(
			"⏱️ You must wait %s before giving more reputation points.",
			common.FormatCooldown(int(math.Ceil(remaining.Seconds()))),
		))
		return
	}

	// Defer: поход в БД может не уложиться в 3 секунды Discord
	if err := event.DeferCreateMessage(false); err != nil {
		log.WithError(err).Error("Не удалось отложить ответ на команду")
		return
	}

	newCount, err := h.service.Award(ctx, ev.GuildID, ev.InvokerID, target)
	if err != nil {
		h.logStoreError(err, "increment", ev.GuildID, target)
		h.updateResponse(event, "⚠️ Failed to give reputation. Please try again later.")
		return
	}
	h.service.MarkAwarded(ev.InvokerID)

	h.updateResponse(event, fmt.Sprintf(
		"🌟 %s has given a reputation point to %s! They now have %s.",
		common.Mention(ev.InvokerID), common.Mention(target), common.FormatPoints(newCount),
	))
}

// handleProfile — показать репутацию участника.
func (h *Handler) handleProfile(
	ctx context.Context,
	event *events.ApplicationCommandInteractionCreate,
	guildID, subject snowflake.ID,
) {
	if err := event.DeferCreateMessage(false); err != nil {
		log.WithError(err).Error("Не удалось отложить ответ на команду")
		return
	}

	count, err := h.service.Reputation(ctx, guildID, subject)
	if err != nil {
		h.logStoreError(err, "lookup", guildID, subject)
		h.updateResponse(event, "⚠️ Failed to fetch reputation. Please try again later.")
		return
	}

	h.updateResponse(event, fmt.Sprintf(
		"🌟 %s has %s.", common.Mention(subject), common.FormatPoints(count),
	))
}

// handleLeaderboard — показать топ сервера.
func (h *Handler) handleLeaderboard(
	ctx context.Context,
	event *events.ApplicationCommandInteractionCreate,
	guildID snowflake.ID,
) {
	if err := event.DeferCreateMessage(false); err != nil {
		log.WithError(err).Error("Не удалось отложить ответ на команду")
		return
	}

	entries, err := h.service.Leaderboard(ctx, guildID)
	if err != nil {
		h.logStoreError(err, "top", guildID, 0)
		h.updateResponse(event, "⚠️ Failed to fetch the leaderboard. Please try again later.")
		return
	}

	h.updateResponse(event, FormatLeaderboard(entries))
}

// HandleMessage обрабатывает благодарность в обычном сообщении:
// «thanks @user» даёт +1 каждому упомянутому, кроме автора и ботов.
func (h *Handler) HandleMessage(ctx context.Context, event *events.MessageCreate) {
	if event.GuildID == nil {
		return
	}

	msg := event.Message
	ev := MessageEvent{
		GuildID:  *event.GuildID,
		AuthorID: msg.Author.ID,
		IsBot:    msg.Author.Bot,
		Content:  msg.Content,
	}
	for _, user := range msg.Mentions {
		if user.Bot {
			continue
		}
		ev.Mentions = append(ev.Mentions, user.ID)
	}

	targets := ClassifyMessage(ev)
	if len(targets) == 0 {
		// ClassifierNoOp: не благодарность — молчим
		return
	}

	if remaining := h.service.CooldownRemaining(ev.AuthorID); remaining > 0 {
		h.sendMessage(event, fmt.Sprintf(
			"⏱️ %s, you must wait %s before giving more reputation points.",
			common.Mention(ev.AuthorID), common.FormatCooldown(int(math.Ceil(remaining.Seconds()))),
		))
		return
	}

	// Каждое упоминание — независимая попытка инкремента: ошибка по одному
	// получателю не должна помешать остальным. Общей транзакции нет.
	awarded := make([]bool, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target snowflake.ID) {
			defer wg.Done()
			if _, err := h.service.Award(ctx, ev.GuildID, ev.AuthorID, target); err != nil {
				h.logStoreError(err, "increment", ev.GuildID, target)
				return
			}
			awarded[i] = true
		}(i, target)
	}
	wg.Wait()

	var mentions []string
	for i, target := range targets {
		if awarded[i] {
			mentions = append(mentions, common.Mention(target))
		}
	}
	if len(mentions) == 0 {
		return
	}
	h.service.MarkAwarded(ev.AuthorID)

	h.sendMessage(event, fmt.Sprintf(
		"🌟 %s has given a reputation point to %s!",
		common.Mention(ev.AuthorID), strings.Join(mentions, ", "),
	))
}

// FormatLeaderboard рендерит топ в текст сообщения.
// Используется и командой, и периодическим дайджестом.
func FormatLeaderboard(entries []Entry) string {
	if len(entries) == 0 {
		return "🏆 No one has earned reputation yet. Be the first!"
	}

	var sb strings.Builder
	sb.WriteString("🏆 **Reputation Leaderboard**\n")
	for i, entry := range entries {
		medal := fmt.Sprintf("%d.", i+1)
		switch i {
		case 0:
			medal = "🥇"
		case 1:
			medal = "🥈"
		case 2:
			medal = "🥉"
		}
		sb.WriteString(fmt.Sprintf(
			"%s %s — **%d** %s\n",
			medal, common.Mention(entry.UserID), entry.Count, common.PluralizePoints(entry.Count),
		))
	}
	return sb.String()
}

// logStoreError логирует ошибку хранилища с операцией и ключом.
// ErrSelfAward сюда попадать не должен (классификатор отсеивает раньше),
// но если попал — это баг вызова, а не хранилища.
func (h *Handler) logStoreError(err error, op string, guildID, userID snowflake.ID) {
	entry := log.WithError(err).WithFields(log.Fields{
		"operation": op,
		"guild_id":  guildID,
		"user_id":   userID,
	})
	if errors.Is(err, common.ErrSelfAward) {
		entry.Warn("Самовыдача дошла до сервиса, классификатор её пропустил")
		return
	}
	entry.Error("Ошибка операции с хранилищем репутации")
}

// sendMessage отправляет сообщение в канал, откуда пришло событие.
// Ошибка отправки только логируется — наружу её бросать нельзя.
func (h *Handler) sendMessage(event *events.MessageCreate, text string) {
	_, err := event.Client().Rest().CreateMessage(
		event.ChannelID,
		discord.NewMessageCreateBuilder().SetContent(text).Build(),
	)
	if err != nil {
		log.WithError(err).WithField("channel_id", event.ChannelID).Error("Ошибка отправки сообщения")
	}
}

// replyEphemeral отвечает на взаимодействие сообщением, видимым только автору.
func (h *Handler) replyEphemeral(event *events.ApplicationCommandInteractionCreate, text string) {
	err := event.CreateMessage(
		discord.NewMessageCreateBuilder().SetContent(text).SetEphemeral(true).Build(),
	)
	if err != nil {
		log.WithError(err).Error("Ошибка ответа на команду")
	}
}

// updateResponse заменяет отложенный ответ на итоговый текст.
func (h *Handler) updateResponse(event *events.ApplicationCommandInteractionCreate, text string) {
	_, err := event.Client().Rest().UpdateInteractionResponse(
		event.ApplicationID(), event.Token(),
		discord.NewMessageUpdateBuilder().SetContent(text).Build(),
	)
	if err != nil {
		log.WithError(err).Error("Ошибка обновления ответа на команду")
	}
}
