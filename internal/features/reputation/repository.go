// Package reputation — repository.go выполняет операции с таблицей reputation.
// Единственное место, где репутация читается и пишется в БД.
package reputation

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store — контракт хранилища репутации. Сервис работает только через него,
// поэтому в тестах подставляется MemoryStore вместо Postgres.
type Store interface {
	// Increment атомарно увеличивает счётчик пары (guild, user) на 1,
	// создавая запись со счётом 1, если её ещё нет.
	// Возвращает счёт ПОСЛЕ инкремента.
	Increment(ctx context.Context, guildID, userID snowflake.ID) (int, error)
	// Get возвращает счёт пары (guild, user). Нет записи — 0 без ошибки.
	Get(ctx context.Context, guildID, userID snowflake.ID) (int, error)
	// Top возвращает до n участников сервера по убыванию счёта.
	// Тай-брейк детерминированный — по user_id.
	Top(ctx context.Context, guildID snowflake.ID, n int) ([]Entry, error)
}

// Repository работает с таблицей reputation в PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий репутации.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Increment — атомарный upsert-инкремент одним запросом.
// Никакого read-then-write: конкурентные инкременты одной пары
// сериализует сама БД, апдейты не теряются.
func (r *Repository) Increment(ctx context.Context, guildID, userID snowflake.ID) (int, error) {
	query := `
		INSERT INTO reputation (guild_id, user_id, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (guild_id, user_id) DO UPDATE
		SET count = reputation.count + 1, updated_at = NOW()
		RETURNING count
	`
	var count int
	err := r.db.QueryRow(ctx, query, int64(guildID), int64(userID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка инкремента репутации (guild=%s, user=%s): %w", guildID, userID, err)
	}
	return count, nil
}

// Get возвращает репутацию участника. Отсутствие записи и ноль очков —
// одно и то же наблюдаемое состояние.
func (r *Repository) Get(ctx context.Context, guildID, userID snowflake.ID) (int, error) {
	query := `SELECT count FROM reputation WHERE guild_id = $1 AND user_id = $2`
	var count int
	err := r.db.QueryRow(ctx, query, int64(guildID), int64(userID)).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("ошибка чтения репутации (guild=%s, user=%s): %w", guildID, userID, err)
	}
	return count, nil
}

// Top возвращает топ-n участников сервера по очкам.
func (r *Repository) Top(ctx context.Context, guildID snowflake.ID, n int) ([]Entry, error) {
	query := `
		SELECT user_id, count FROM reputation
		WHERE guild_id = $1
		ORDER BY count DESC, user_id ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, int64(guildID), n)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса топа (guild=%s): %w", guildID, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var userID int64
		var count int
		if err := rows.Scan(&userID, &count); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		out = append(out, Entry{UserID: snowflake.ID(userID), Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}

	return out, nil
}
