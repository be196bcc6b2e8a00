package notification

import (
	"context"
	"encoding/json"
	"time"

	"photomarket/pkg/redis"
)

// Cache keeps a short per-user list of recent notifications in Redis so
// the unread badge does not hit Postgres on every poll. Maintained by the
// notifier consumer, not by the API process.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb, ttl: 30 * 24 * time.Hour}
}

func key(userID string) string { return "notif:" + userID }

func (c *Cache) Push(ctx context.Context, n Notification) error {
	b, _ := json.Marshal(n)
	pipe := c.rdb.R.TxPipeline()
	pipe.LPush(ctx, key(n.UserID), b)
	pipe.LTrim(ctx, key(n.UserID), 0, 99)
	pipe.Expire(ctx, key(n.UserID), c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *Cache) Recent(ctx context.Context, userID string, limit int64) ([]Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	vals, err := c.rdb.R.LRange(ctx, key(userID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0, len(vals))
	for _, v := range vals {
		var n Notification
		if json.Unmarshal([]byte(v), &n) == nil {
			out = append(out, n)
		}
	}
	return out, nil
}
