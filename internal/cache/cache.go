package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get for a key that was never set or whose
// TTL has elapsed.
var ErrNotFound = errors.New("key not found")

type Cache interface {
	Get(ctx context.Context, key string) (float64, error)
	Set(ctx context.Context, key string, value float64, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
