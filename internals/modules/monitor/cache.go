package monitor

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Cache interface {
	GetSnapshot(ctx context.Context, userID uuid.UUID) ([]byte, bool, error)
	SetSnapshot(ctx context.Context, userID uuid.UUID, data []byte, ttl time.Duration) error
	DelSnapshot(ctx context.Context, userID uuid.UUID) error
}
