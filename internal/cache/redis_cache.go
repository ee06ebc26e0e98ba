package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

// SearchCache caches inventory search results. Implementations must treat a
// miss and an unavailable backend the same way: (nil, false, nil) lets the
// caller fall through to the store.
type SearchCache interface {
	Get(ctx context.Context, filter domain.ItemSearchFilter) ([]domain.StockItem, bool, error)
	Set(ctx context.Context, filter domain.ItemSearchFilter, items []domain.StockItem) error
	// Invalidate drops every cached search result. Called after any write
	// that can change a result set (item CRUD, recorded transactions).
	Invalidate(ctx context.Context) error
	Close() error
}

const searchKeyPrefix = "inventory:search:"

// RedisSearchCache backs SearchCache with Redis.
type RedisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSearchCache connects a Redis-backed search cache.
func NewRedisSearchCache(addr, password string, db int, ttl time.Duration) *RedisSearchCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSearchCache{client: client, ttl: ttl}
}

func (c *RedisSearchCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSearchCache) Close() error {
	return c.client.Close()
}

func searchKey(f domain.ItemSearchFilter) string {
	from, to := "", ""
	if f.CreatedFrom != nil {
		from = f.CreatedFrom.UTC().Format(time.RFC3339Nano)
	}
	if f.CreatedTo != nil {
		to = f.CreatedTo.UTC().Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("%s%s|%s|%s|%d", searchKeyPrefix, f.Search, from, to, f.Limit)
}

func (c *RedisSearchCache) Get(ctx context.Context, filter domain.ItemSearchFilter) ([]domain.StockItem, bool, error) {
	val, err := c.client.Get(ctx, searchKey(filter)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []domain.StockItem
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, filter domain.ItemSearchFilter, items []domain.StockItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(filter), payload, c.ttl).Err()
}

func (c *RedisSearchCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// NoopSearchCache satisfies SearchCache when no Redis address is configured.
type NoopSearchCache struct{}

func (NoopSearchCache) Get(ctx context.Context, filter domain.ItemSearchFilter) ([]domain.StockItem, bool, error) {
	return nil, false, nil
}

func (NoopSearchCache) Set(ctx context.Context, filter domain.ItemSearchFilter, items []domain.StockItem) error {
	return nil
}

func (NoopSearchCache) Invalidate(ctx context.Context) error { return nil }

func (NoopSearchCache) Close() error { return nil }
