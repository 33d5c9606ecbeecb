package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ggtips/gg-tips-backend/internal/logger"
)

// CacheRepository stores serialized payloads (CMS content, steam profile
// snapshots) in Redis with a TTL. A cache miss is reported as (nil, nil).
type CacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewCacheRepository creates a cache repository with the given default TTL.
func NewCacheRepository(client *redis.Client, expiration time.Duration) *CacheRepository {
	return &CacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached payload by key. Returns (nil, nil) on a miss.
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores a payload under key with the repository TTL.
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, key, value, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"size", len(value),
		"error", err,
	)

	return err
}

// Delete removes a cached payload.
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
