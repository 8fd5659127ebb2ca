package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage persists the cart slot as a single Redis string under a fixed
// per-session key with a TTL, so abandoned carts age out on their own.
type RedisStorage struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStorage(client *redis.Client, sessionID string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: client,
		key:    fmt.Sprintf("cart:session:%s", sessionID),
		ttl:    ttl,
	}
}

func (r *RedisStorage) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotPersisted
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *RedisStorage) Write(ctx context.Context, data []byte) error {
	return r.client.Set(ctx, r.key, data, r.ttl).Err()
}
