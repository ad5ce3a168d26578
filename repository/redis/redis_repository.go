package redis

import (
	"context"
	"time"

	redisclient "github.com/celebratehq/birthday-api/cmd/redis"
)

// Repository defines methods for the Redis-backed session store
type Repository interface {
	SetSession(ctx context.Context, sessionID string, accountID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with the account ID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, accountID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, accountID, ttl).Err()
}

// GetSession retrieves the account ID bound to a session
func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}
