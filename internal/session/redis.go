package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps live session ids in Redis so both users' requests
// see the same session state regardless of which process serves them.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore instance.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, id string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+id, "1", ttl).Err()
}

func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
