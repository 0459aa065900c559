package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foodnow/foodnow-go/core"
)

const tokenKey = "foodnow:session:token"

// RedisTokenStore persists the access token in Redis so a session
// survives process restarts and is shared across replicas of the same
// client (kiosk deployments run several).
type RedisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenStore connects to Redis and verifies the connection
func NewRedisTokenStore(redisURL string, ttl time.Duration) (*RedisTokenStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenStore{client: client, ttl: ttl}, nil
}

// Save stores the token with the configured TTL
func (r *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, tokenKey, token, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Token returns the stored token or core.ErrNoToken when absent or
// expired
func (r *RedisTokenStore) Token(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", core.ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if token == "" {
		return "", core.ErrNoToken
	}
	return token, nil
}

// Clear removes the token
func (r *RedisTokenStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, tokenKey).Err(); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// Close releases the Redis connection
func (r *RedisTokenStore) Close() error {
	return r.client.Close()
}
