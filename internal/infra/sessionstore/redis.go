package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotelcart/internal/domain/cart"
	"hotelcart/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Load(ctx context.Context, sessionID uuid.UUID) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart from redis", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal stored cart", err)
	}
	return &c, nil
}

// Save writes the whole cart and renews the session TTL, so a cart lives for
// the configured duration past its last mutation.
func (s *RedisStore) Save(ctx context.Context, sessionID uuid.UUID, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal cart", err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart to redis", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete cart from redis", err)
	}
	return nil
}

func cartKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("cart:sess:%s", sessionID)
}
