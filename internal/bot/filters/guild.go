package filters

import (
	"github.com/disgoorg/snowflake/v2"
	log "github.com/sirupsen/logrus"
)

// GuildFilter ограничивает бота одним сервером, если GUILD_ID задан.
// При GUILD_ID=0 бот работает на любом сервере, куда его добавили,
// но личные сообщения игнорируются всегда.
type GuildFilter struct {
	guildID snowflake.ID // 0 = любой сервер
}

func NewGuildFilter(guildID int64) *GuildFilter {
	return &GuildFilter{guildID: snowflake.ID(guildID)}
}

// Allow решает, обрабатывать ли событие с данного сервера.
// nil guildID означает DM или системное событие — такие не обрабатываем.
func (f *GuildFilter) Allow(guildID *snowflake.ID) bool {
	if guildID == nil {
		log.WithField("component", "GuildFilter").Debug("deny: not a guild event")
		return false
	}
	if f.guildID == 0 {
		return true
	}
	if *guildID == f.guildID {
		return true
	}

	log.WithFields(log.Fields{
		"component":        "GuildFilter",
		"guild_id":         *guildID,
		"allowed_guild_id": f.guildID,
	}).Debug("deny: foreign guild")
	return false
}
