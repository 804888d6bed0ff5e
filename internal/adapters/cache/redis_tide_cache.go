package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"geodesy-service/internal/domain"
	"geodesy-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTideCache caches fetched tide series in Redis with a TTL.
// Observed water levels keep arriving for recent windows, so entries expire
// rather than living forever like the SQL caches.
type RedisTideCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTideCache(client *redis.Client, ttl time.Duration) *RedisTideCache {
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &RedisTideCache{Client: client, TTL: ttl}
}

func redisKey(req ports.TideRequest) string {
	station, product, datum, begin, end := requestKey(req)
	return fmt.Sprintf("tide:%s:%s:%s:%d:%d", station, product, datum, begin, end)
}

// Fetch the cached series for one request window.
func (c *RedisTideCache) Get(
	ctx context.Context,
	req ports.TideRequest,
) (*domain.TideSeries, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("tide cache: redis client is nil")
	}
	if strings.TrimSpace(req.StationID) == "" {
		return nil, false, errors.New("get tide cache: station must not be empty")
	}

	raw, err := c.Client.Get(ctx, redisKey(req)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get tide cache: redis get: %w", err)
	}

	var series domain.TideSeries
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil, false, fmt.Errorf("get tide cache: decode series: %w", err)
	}

	return &series, true, nil
}

// Store a fetched series for one request window.
func (c *RedisTideCache) Put(
	ctx context.Context,
	req ports.TideRequest,
	series *domain.TideSeries,
) error {
	if c.Client == nil {
		return errors.New("tide cache: redis client is nil")
	}
	if series == nil {
		return errors.New("insert tide cache: series is nil")
	}
	if strings.TrimSpace(req.StationID) == "" {
		return errors.New("insert tide cache: station must not be empty")
	}

	raw, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("insert tide cache: encode series: %w", err)
	}

	if err := c.Client.Set(ctx, redisKey(req), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert tide cache station=%q: redis set: %w", req.StationID, err)
	}

	return nil
}
