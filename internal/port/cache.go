package port

import (
	"context"
	"time"
)

// CacheStore abstracts a keyed string cache with per-entry expiry. A miss
// is ("", false, nil); errors indicate an I/O failure against the store,
// which callers treat as a miss.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
