package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nvales/watchdex/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	watchCachePrefix = "watch:"
	watchCacheTTL    = 5 * time.Minute
)

// WatchCache caches watch detail records in Redis
type WatchCache struct {
	client *Client
}

// NewWatchCache creates a new watch cache
func NewWatchCache(client *Client) *WatchCache {
	return &WatchCache{client: client}
}

// Get retrieves a cached watch. A miss returns nil, nil.
func (c *WatchCache) Get(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	key := watchCachePrefix + id.Hex()

	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var watch domain.Watch
	if err := json.Unmarshal(data, &watch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal watch: %w", err)
	}

	return &watch, nil
}

// Set caches a watch record
func (c *WatchCache) Set(ctx context.Context, watch *domain.Watch) error {
	key := watchCachePrefix + watch.ID.Hex()

	data, err := json.Marshal(watch)
	if err != nil {
		return fmt.Errorf("failed to marshal watch: %w", err)
	}

	return c.client.rdb.Set(ctx, key, data, watchCacheTTL).Err()
}

// Invalidate removes a cached watch
func (c *WatchCache) Invalidate(ctx context.Context, id primitive.ObjectID) error {
	return c.client.rdb.Del(ctx, watchCachePrefix+id.Hex()).Err()
}
