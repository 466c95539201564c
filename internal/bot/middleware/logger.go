// Package middleware содержит промежуточные обработчики для логирования,
// восстановления после паники и rate-limiting.
package middleware

import (
	"time"

	"github.com/disgoorg/disgo/events"
	log "github.com/sirupsen/logrus"
)

// LogMessage логирует входящее сообщение.
// Записывает: user_id, guild_id, channel_id, текст (первые 50 символов).
func LogMessage(event *events.MessageCreate) {
	if event == nil {
		return
	}

	text := event.Message.Content
	if len(text) > 50 {
		text = text[:50] + "..."
	}

	fields := log.Fields{
		"user_id":    event.Message.Author.ID,
		"channel_id": event.ChannelID,
		"text":       text,
		"time":       time.Now().Format("15:04:05"),
	}
	if event.GuildID != nil {
		fields["guild_id"] = *event.GuildID
	}

	log.WithFields(fields).Debug("Входящее сообщение")
}
