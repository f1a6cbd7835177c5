package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func snapshotKey(userID uuid.UUID) string {
	return fmt.Sprintf("incidents:snapshot:%v", userID)
}

// GetSnapshot returns the cached incident snapshot of a user. A miss is
// reported with ok == false and a nil error.
func (c *Client) GetSnapshot(ctx context.Context, userID uuid.UUID) ([]byte, bool, error) {
	var data []byte

	err := retry(ctx, 2, func() error {
		var err error
		data, err = c.rdb.Get(ctx, snapshotKey(userID)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	})
	if err != nil {
		return nil, false, err
	}

	return data, data != nil, nil
}

func (c *Client) SetSnapshot(ctx context.Context, userID uuid.UUID, data []byte, ttl time.Duration) error {
	return retry(ctx, 2, func() error {
		return c.rdb.Set(ctx, snapshotKey(userID), data, ttl).Err()
	})
}

func (c *Client) DelSnapshot(ctx context.Context, userID uuid.UUID) error {
	return retry(ctx, 3, func() error {
		return c.rdb.Del(ctx, snapshotKey(userID)).Err()
	})
}
