// Package common содержит общие утилиты, используемые во всём проекте.
// Сюда входят: форматирование очков репутации, упоминаний и кулдауна.
package common

import (
	"fmt"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// PluralizePoints возвращает "point" или "points" для числа n.
// Ответы бота на английском — сервер международный.
func PluralizePoints(n int) string {
	if n == 1 || n == -1 {
		return "point"
	}
	return "points"
}

// FormatPoints форматирует количество очков в читабельную строку.
// Пример: FormatPoints(3) → "3 reputation points"
func FormatPoints(n int) string {
	return fmt.Sprintf("%d reputation %s", n, PluralizePoints(n))
}

// Mention возвращает Discord-упоминание пользователя: <@123456789>.
func Mention(id snowflake.ID) string {
	return fmt.Sprintf("<@%s>", id)
}

// FormatCooldown форматирует остаток кулдауна в читабельную строку.
//
// Примеры:
//
//	FormatCooldown(45)   → "45 seconds"
//	FormatCooldown(60)   → "1 minute"
//	FormatCooldown(3720) → "1 hour, 2 minutes"
func FormatCooldown(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	hours, mins := minutes/60, minutes%60

	var parts []string
	if hours > 0 {
		parts = append(parts, pluralizeUnit(hours, "hour"))
	}
	if mins > 0 {
		parts = append(parts, pluralizeUnit(mins, "minute"))
	}
	// Секунды показываем только когда счёт идёт на минуты
	if secs > 0 && hours == 0 {
		parts = append(parts, pluralizeUnit(secs, "second"))
	}
	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}

func pluralizeUnit(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
