package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ncaam_v5/strategy/internal/metrics"
	"ncaam_v5/strategy/internal/table"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "ncaam:strategy"

// Config holds Redis connection settings
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RedisCache stores ratings table snapshots in Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Debug().
		Str("addr", cfg.Host+":"+cfg.Port).
		Int("db", cfg.DB).
		Msg("Redis client initialized")

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetTable returns the cached table for a source and season.
// found is false on a cache miss.
func (c *RedisCache) GetTable(ctx context.Context, source string, season int) (*table.Table, bool, error) {
	key := TableKey(source, season)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheMiss()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached table: %w", err)
	}

	t, err := decodeTable(data)
	if err != nil {
		return nil, false, err
	}

	metrics.RecordCacheHit()
	log.Debug().Str("key", key).Int("rows", t.Len()).Msg("Table cache hit")
	return t, true, nil
}

// SetTable caches a table snapshot for a source and season
func (c *RedisCache) SetTable(ctx context.Context, source string, season int, t *table.Table, ttl time.Duration) error {
	data, err := encodeTable(t)
	if err != nil {
		return err
	}

	key := TableKey(source, season)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache table: %w", err)
	}

	log.Debug().Str("key", key).Dur("ttl", ttl).Msg("Table cached")
	return nil
}

// Invalidate drops the cached table for a source and season
func (c *RedisCache) Invalidate(ctx context.Context, source string, season int) error {
	if err := c.client.Del(ctx, TableKey(source, season)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached table: %w", err)
	}
	return nil
}

// TableKey builds the cache key for a table snapshot
func TableKey(source string, season int) string {
	return fmt.Sprintf("%s:table:%s:%d", keyPrefix, source, season)
}

func encodeTable(t *table.Table) ([]byte, error) {
	data, err := json.Marshal(t.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal table: %w", err)
	}
	return data, nil
}

func decodeTable(data []byte) (*table.Table, error) {
	var snap table.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached table: %w", err)
	}
	return table.FromSnapshot(snap), nil
}
