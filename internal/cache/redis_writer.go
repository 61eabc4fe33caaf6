package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// TTL constants
const (
	TodaysGamesTTL  = 24 * time.Hour
	OddsSnapshotTTL = 2 * time.Hour
)

// RedisWriter stores run snapshots (today's games, the normalized odds
// batch) for other services to read. Writes are best-effort: the
// pipeline never fails because the cache is down
type RedisWriter struct {
	client *redis.Client
}

// NewRedisWriter creates a new Redis writer
func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{
		client: client,
	}
}

// WriteTodaysGames stores the list of today's game keys
func (w *RedisWriter) WriteTodaysGames(ctx context.Context, date time.Time, games []models.Game) error {
	key := fmt.Sprintf("games:today:basketball_nba:%s", date.Format("2006-01-02"))

	values := make([]interface{}, len(games))
	for i, game := range games {
		values[i] = game.Key()
	}

	pipe := w.client.Pipeline()
	pipe.Del(ctx, key) // Clear old list
	if len(values) > 0 {
		pipe.RPush(ctx, key, values...)
	}
	pipe.Expire(ctx, key, TodaysGamesTTL)

	_, err := pipe.Exec(ctx)
	return err
}

// WriteOddsSnapshot stores the normalized odds batch for a bookmaker
func (w *RedisWriter) WriteOddsSnapshot(ctx context.Context, bookmaker string, odds map[string]models.OddsRecord) error {
	key := fmt.Sprintf("odds:snapshot:basketball_nba:%s", bookmaker)

	data, err := json.Marshal(odds)
	if err != nil {
		return fmt.Errorf("marshaling odds snapshot: %w", err)
	}

	return w.client.Set(ctx, key, data, OddsSnapshotTTL).Err()
}
