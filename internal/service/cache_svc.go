package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

const (
	resultsCacheKey = "results:all"
	resultsCacheTTL = time.Minute
)

// CacheService provides a Redis cache-aside layer for result aggregation.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and all
// cache operations become no-ops.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetResults retrieves the cached tally. Returns nil when not cached or
// the cache is disabled.
func (c *CacheService) GetResults(ctx context.Context) ([]model.PositionResult, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, resultsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var results []model.PositionResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// SetResults stores the tally with a short TTL.
func (c *CacheService) SetResults(ctx context.Context, results []model.PositionResult) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, resultsCacheKey, b, resultsCacheTTL).Err()
}

// InvalidateResults drops the cached tally (called after each accepted vote
// and after candidate or position mutations).
func (c *CacheService) InvalidateResults(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, resultsCacheKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
