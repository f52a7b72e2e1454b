package infrastructure

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache is a best-effort write-through of issued tokens. Token
// validity always rests on the signature alone; a cache miss or a redis
// outage never fails a request.
type TokenCache struct {
	client *redis.Client
}

func NewTokenCache(addr, password string) *TokenCache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		PoolSize:     10,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &TokenCache{client: client}
}

func (c *TokenCache) SetToken(ctx context.Context, token, userID string, expiration time.Duration) error {
	return c.client.Set(ctx, "token:"+token, userID, expiration).Err()
}

func (c *TokenCache) GetToken(ctx context.Context, token string) (string, error) {
	value, err := c.client.Get(ctx, "token:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return value, nil
}
