package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

type RedisStore struct {
	client *redis.Client
}

func (r *RedisStore) Get(ctx context.Context, sessionKey string) (string, error) {
	id, err := r.client.Get(ctx, storeKey(sessionKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return id, nil
}

func (r *RedisStore) PutIfAbsent(ctx context.Context, sessionKey, id string) (bool, error) {
	// no TTL: the identity is durable until explicitly cleared
	won, err := r.client.SetNX(ctx, storeKey(sessionKey), id, 0).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx failed: %w", err)
	}
	return won, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionKey string) error {
	if err := r.client.Del(ctx, storeKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func storeKey(sessionKey string) string {
	return fmt.Sprintf("storefront:cart_id:%s", sessionKey)
}
