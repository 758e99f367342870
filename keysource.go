package hstoken

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SecretSource supplies the signing secret at call time. Implementations must
// treat the returned bytes as read-only for the lifetime of the call.
type SecretSource interface {
	SecretKey(ctx context.Context) ([]byte, error)
}

// StaticSecret is a fixed in-memory secret.
type StaticSecret []byte

func (s StaticSecret) SecretKey(context.Context) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("static secret is empty")
	}
	return s, nil
}

// RedisSecretSource fetches the signing secret from a Redis key on every
// call, so the key can be rolled out-of-band without restarting consumers.
type RedisSecretSource struct {
	client *redis.Client
	key    string
}

// NewRedisSecretSource creates a Redis-backed secret source and verifies the
// connection before returning it.
func NewRedisSecretSource(client *redis.Client, key string) (*RedisSecretSource, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if key == "" {
		return nil, fmt.Errorf("redis secret key name cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisSecretSource{client: client, key: key}, nil
}

func (r *RedisSecretSource) SecretKey(ctx context.Context) ([]byte, error) {
	secret, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("secret %q not found in redis", r.key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret %q in redis is empty", r.key)
	}
	return secret, nil
}

// interface guards
var (
	_ SecretSource = StaticSecret(nil)
	_ SecretSource = (*RedisSecretSource)(nil)
)
