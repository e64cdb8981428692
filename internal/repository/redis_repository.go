package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/nikolayk812/commerce-core/internal/domain"
	"github.com/nikolayk812/commerce-core/internal/port"
)

type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis returns a CartRepository storing the cart document as a single
// redis string value. Writes are unversioned; concurrent writers to the same
// key overwrite each other.
func NewRedis(client *redis.Client, key string) (port.CartRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return &redisRepository{client: client, key: key}, nil
}

func (r *redisRepository) Load(ctx context.Context) (domain.Cart, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("client.Get: %w", err)
	}

	cart, err := unmarshalDocument(raw)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("unmarshalDocument: %w", err)
	}

	return cart, nil
}

func (r *redisRepository) Save(ctx context.Context, cart domain.Cart) error {
	raw, err := marshalDocument(cart)
	if err != nil {
		return fmt.Errorf("marshalDocument: %w", err)
	}

	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (r *redisRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}
