package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/domain/schedule"
)

const keyPrefix = "schedules:settings:"

// NewClient connects to REDIS_URL and pings it once.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// SettingsCache is a read-through cache of per-hub settings stored as JSON.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSettingsCache(client *redis.Client, ttl time.Duration) *SettingsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SettingsCache{client: client, ttl: ttl}
}

func key(hubID uuid.UUID) string { return keyPrefix + hubID.String() }

// Get reports a miss as (nil, false, nil).
func (c *SettingsCache) Get(ctx context.Context, hubID uuid.UUID) (*schedule.Settings, bool, error) {
	raw, err := c.client.Get(ctx, key(hubID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var s schedule.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		// A corrupt entry is dropped and treated as a miss.
		_ = c.client.Del(ctx, key(hubID)).Err()
		return nil, false, nil
	}
	return &s, true, nil
}

func (c *SettingsCache) Set(ctx context.Context, s *schedule.Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(s.HubID), b, c.ttl).Err()
}

func (c *SettingsCache) Invalidate(ctx context.Context, hubID uuid.UUID) error {
	return c.client.Del(ctx, key(hubID)).Err()
}
