package cache

import (
	"context"
	"fmt"
	"strconv"

	redisv9 "github.com/redis/go-redis/v9"
)

// UnreadCache keeps a per-employee unread message counter. The notification
// worker increments it; the employee surface reads and resets it.
type UnreadCache struct {
	client *redisv9.Client
}

func NewUnreadCache(client *redisv9.Client) *UnreadCache {
	return &UnreadCache{client: client}
}

func (c *UnreadCache) Incr(ctx context.Context, employeeID uint) error {
	if err := c.client.Incr(ctx, c.key(employeeID)).Err(); err != nil {
		return fmt.Errorf("redis incr unread failed: %w", err)
	}
	return nil
}

func (c *UnreadCache) Count(ctx context.Context, employeeID uint) (int64, error) {
	raw, err := c.client.Get(ctx, c.key(employeeID)).Result()
	if err == redisv9.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get unread failed: %w", err)
	}
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse unread counter failed: %w", err)
	}
	return count, nil
}

func (c *UnreadCache) Reset(ctx context.Context, employeeID uint) error {
	if err := c.client.Del(ctx, c.key(employeeID)).Err(); err != nil {
		return fmt.Errorf("redis reset unread failed: %w", err)
	}
	return nil
}

func (c *UnreadCache) key(employeeID uint) string {
	return fmt.Sprintf("inbox:unread:%d", employeeID)
}
