// internal/infrastructure/storage/redis/store.go
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage"
)

// Store implements storage.Store on top of Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed key-value store
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves a value by key
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores a key-value pair with expiration
func (s *Store) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}

// Delete deletes one or more keys
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
