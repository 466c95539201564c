// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях бота.
// Эти ошибки позволяют обработчикам различать типы проблем
// и отправлять пользователю понятные сообщения.
package common

import "errors"

// Ошибки репутации
var (
	// ErrSelfAward — попытка дать репутацию самому себе
	ErrSelfAward = errors.New("нельзя давать репутацию самому себе")
	// ErrCooldown — кулдаун на выдачу репутации ещё не истёк
	ErrCooldown = errors.New("кулдаун на выдачу репутации ещё не истёк")
)
