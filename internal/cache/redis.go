package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const versionKey = "surgery:trends:version"

// RedisCache namespaces entries under a version counter. Invalidate bumps the
// counter, which orphans old entries until their TTL expires.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
	obs Observer
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration, obs Observer) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl, obs: obs}
}

// Connect dials Redis and checks it answers.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func (c *RedisCache) generation(ctx context.Context) (Generation, error) {
	v, err := c.rdb.Get(ctx, versionKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read cache version: %w", err)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse cache version: %w", err)
	}
	return Generation(n), nil
}

func entryKey(gen Generation, key string) string {
	return fmt.Sprintf("surgery:v%d:%s", gen, key)
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (Generation, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return 0, err
	}

	data, err := c.rdb.Get(ctx, entryKey(gen, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.miss()
		return gen, ErrCacheMiss
	}
	if err != nil {
		return gen, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		c.miss()
		return gen, fmt.Errorf("decode cached %s: %w", key, err)
	}
	if c.obs != nil {
		c.obs.CacheHit()
	}
	return gen, nil
}

// Set writes under gen rather than the current version, so a value computed
// before a concurrent Invalidate lands in an orphaned namespace.
func (c *RedisCache) Set(ctx context.Context, gen Generation, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.rdb.Set(ctx, entryKey(gen, key), data, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, versionKey).Err()
}

func (c *RedisCache) miss() {
	if c.obs != nil {
		c.obs.CacheMiss()
	}
}
