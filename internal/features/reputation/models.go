// Package reputation реализует систему репутации сервера.
// models.go описывает структуры хранения.
package reputation

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Record хранит накопленную репутацию участника на конкретном сервере.
// Пара (GuildID, UserID) уникальна: одна запись на участника на сервер.
type Record struct {
	ID        int64        `db:"id"`
	GuildID   snowflake.ID `db:"guild_id"`
	UserID    snowflake.ID `db:"user_id"`
	Count     int          `db:"count"` // Неотрицательный, только растёт
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// Entry — строка таблицы лидеров: участник и его очки.
type Entry struct {
	UserID snowflake.ID
	Count  int
}
