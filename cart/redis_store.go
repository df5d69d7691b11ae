package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each cart as a JSON blob under its fixed key, expiring
// after TTL of inactivity (every Save refreshes the clock).
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) Load(ctx context.Context, clientID string) (*Cart, error) {
	raw, err := s.Client.Get(ctx, Key(clientID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

func (s *RedisStore) Save(ctx context.Context, clientID string, c *Cart) error {
	raw, err := c.Encode()
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, Key(clientID), raw, s.TTL).Err()
}
