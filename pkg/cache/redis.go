package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"pulsegate/pkg/models"
)

// RedisStore implements Store on top of a redis connection. The checker
// pipeline writes snapshots with SET and history with LPUSH+LTRIM; this side
// only ever issues GET, LRANGE and DEL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis using a URL of the form
// redis://[user:pass@]host:port[/db].
func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// Status reads the live snapshot key. A missing key means the checker has not
// observed this monitor yet and is reported as (nil, nil).
func (s *RedisStore) Status(ctx context.Context, monitorID int) (*models.StatusSnapshot, error) {
	raw, err := s.client.Get(ctx, StatusKey(monitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get status for monitor %d: %w", monitorID, err)
	}

	var snapshot models.StatusSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, fmt.Errorf("decode status for monitor %d: %w", monitorID, err)
	}
	return &snapshot, nil
}

// History reads the newest HistoryLimit entries and reverses them so callers
// receive chronological order for charting.
func (s *RedisStore) History(ctx context.Context, monitorID int) ([]models.HistoryPoint, error) {
	raw, err := s.client.LRange(ctx, HistoryKey(monitorID), 0, HistoryLimit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("get history for monitor %d: %w", monitorID, err)
	}

	points := make([]models.HistoryPoint, 0, len(raw))
	// LRANGE returns newest first; walk backwards to build oldest first.
	for i := len(raw) - 1; i >= 0; i-- {
		var point models.HistoryPoint
		if err := json.Unmarshal([]byte(raw[i]), &point); err != nil {
			return nil, fmt.Errorf("decode history entry for monitor %d: %w", monitorID, err)
		}
		points = append(points, point)
	}
	return points, nil
}

// PurgeMonitor deletes the status, history and last-logged-state keys
// concurrently and reports one outcome per key.
func (s *RedisStore) PurgeMonitor(ctx context.Context, monitorID int) []KeyOutcome {
	keys := MonitorKeys(monitorID)
	outcomes := make([]KeyOutcome, len(keys))

	var waitGroup sync.WaitGroup
	for i, key := range keys {
		waitGroup.Add(1)
		go func(i int, key string) {
			defer waitGroup.Done()
			outcomes[i] = KeyOutcome{Key: key, Err: s.client.Del(ctx, key).Err()}
		}(i, key)
	}
	waitGroup.Wait()

	return outcomes
}

// Ping verifies connectivity to redis.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
