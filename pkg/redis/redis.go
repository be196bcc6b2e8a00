package redis

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct{ R *redis.Client }

func New(addr string) *Client {
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 0})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	return &Client{R: rdb}
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.R.Get(ctx, key).Result()
}

func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.R.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.R.Del(ctx, keys...).Err()
}
