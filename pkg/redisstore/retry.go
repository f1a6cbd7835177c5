package redisstore

import (
	"context"
	"time"
)

// retry runs fn up to attempts times with a linear backoff of 50ms per
// attempt, giving up early when ctx is done.
func retry(ctx context.Context, attempts int, fn func() error) error {
	var err error

	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(50*(i+1)) * time.Millisecond):
		}
	}

	return err
}
