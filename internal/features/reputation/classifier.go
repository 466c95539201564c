// Package reputation — classifier.go решает, какую операцию хранилища
// требует входящее событие. Чистые функции без побочных эффектов:
// сюда не попадает ни Discord API, ни база данных.
package reputation

import "github.com/disgoorg/snowflake/v2"

// Значения параметра action команды /rep.
const (
	ActionLeaderboard = "leaderboard"
	ActionProfile     = "profile"
)

// CommandEvent — вызов slash-команды /rep в нейтральном виде.
type CommandEvent struct {
	GuildID   snowflake.ID
	InvokerID snowflake.ID
	TargetID  snowflake.ID // 0 = параметр user не указан
	Action    string       // "" = выдать или посмотреть репутацию
}

// MessageEvent — обычное сообщение в нейтральном виде.
type MessageEvent struct {
	GuildID  snowflake.ID
	AuthorID snowflake.ID
	IsBot    bool
	Content  string
	Mentions []snowflake.ID
}

// DecisionKind перечисляет возможные решения по команде.
type DecisionKind int

const (
	// DecideNone — событие не требует никакой операции
	DecideNone DecisionKind = iota
	// DecideLeaderboard — показать топ сервера
	DecideLeaderboard
	// DecideProfile — показать репутацию Subject
	DecideProfile
	// DecideAward — дать +1 репутации Subject
	DecideAward
	// DecideRejectSelfAward — отказ: самому себе репутацию не дают
	DecideRejectSelfAward
)

// Decision — решение классификатора по команде.
type Decision struct {
	Kind    DecisionKind
	Subject snowflake.ID // чей профиль смотреть / кому дать
}

// ClassifyCommand применяет таблицу решений команды /rep:
//
//	action=leaderboard             → топ сервера (user игнорируется)
//	action=profile, user указан    → репутация user
//	action=profile, user не указан → репутация вызвавшего
//	без action, user не указан     → репутация вызвавшего
//	без action, user == вызвавший  → отказ, в хранилище не ходим
//	без action, user != вызвавший  → +1 репутации user
func ClassifyCommand(ev CommandEvent) Decision {
	switch ev.Action {
	case ActionLeaderboard:
		return Decision{Kind: DecideLeaderboard}

	case ActionProfile:
		subject := ev.InvokerID
		if ev.TargetID != 0 {
			subject = ev.TargetID
		}
		return Decision{Kind: DecideProfile, Subject: subject}

	case "":
		if ev.TargetID == 0 {
			// «посмотреть свою»
			return Decision{Kind: DecideProfile, Subject: ev.InvokerID}
		}
		if ev.TargetID == ev.InvokerID {
			return Decision{Kind: DecideRejectSelfAward}
		}
		return Decision{Kind: DecideAward, Subject: ev.TargetID}
	}

	// Неизвестный action (схема команды такого не выдаёт)
	return Decision{Kind: DecideNone}
}

// ClassifyMessage возвращает получателей репутации за благодарность в сообщении.
// Пустой список — делать ничего не нужно (сообщение бота, нет триггера,
// нет упоминаний или автор упомянул только себя). Самоупоминания
// пропускаются молча, дубликаты схлопываются.
func ClassifyMessage(ev MessageEvent) []snowflake.ID {
	if ev.IsBot {
		return nil
	}
	if len(ev.Mentions) == 0 {
		return nil
	}
	if !ContainsTrigger(ev.Content) {
		return nil
	}

	seen := make(map[snowflake.ID]struct{}, len(ev.Mentions))
	var targets []snowflake.ID
	for _, id := range ev.Mentions {
		if id == ev.AuthorID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		targets = append(targets, id)
	}
	return targets
}
