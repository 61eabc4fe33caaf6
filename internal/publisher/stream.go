package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

// StreamKey is the Redis stream normalized odds are published to
const StreamKey = "odds.normalized.basketball_nba"

// StreamPublisher publishes normalized odds records to Redis Streams
// for downstream consumers
type StreamPublisher struct {
	redis *redis.Client
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(redisClient *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		redis: redisClient,
	}
}

// PublishOdds publishes one message per game in a single pipeline,
// tagged with the run ID
func (p *StreamPublisher) PublishOdds(ctx context.Context, runID string, odds map[string]models.OddsRecord) error {
	if len(odds) == 0 {
		return nil
	}

	pipe := p.redis.Pipeline()

	for gameKey, record := range odds {
		data, err := json.Marshal(record)
		if err != nil {
			fmt.Printf("[Publisher] error marshaling odds for %s: %v\n", gameKey, err)
			continue
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: StreamKey,
			Values: map[string]interface{}{
				"run_id": runID,
				"game":   gameKey,
				"data":   string(data),
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("error executing publish pipeline: %w", err)
	}

	return nil
}
