package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/toolrent/admin-gateway/internal/ports"
)

// RedisVault stores keys in Redis under a shared prefix, for
// deployments where the gateway runs more than one replica. Values have
// no TTL; the session store deletes them explicitly on logout.
type RedisVault struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.StateVault = (*RedisVault)(nil)

// NewRedisVault wraps a Redis client with the default key prefix.
func NewRedisVault(client redis.UniversalClient) *RedisVault {
	return NewRedisVaultWithPrefix(client, "toolrent:gateway:")
}

// NewRedisVaultWithPrefix wraps a Redis client with a custom key prefix.
func NewRedisVaultWithPrefix(client redis.UniversalClient, prefix string) *RedisVault {
	return &RedisVault{client: client, prefix: prefix}
}

func (v *RedisVault) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := v.client.Get(ctx, v.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (v *RedisVault) Set(ctx context.Context, key, value string) error {
	if err := v.client.Set(ctx, v.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (v *RedisVault) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = v.prefix + key
	}
	if err := v.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}
