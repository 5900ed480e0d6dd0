package viewcache

import (
	"context"
	"time"
)

// DefaultTTL bounds how stale a cached view can get when an
// invalidation message is lost.
const DefaultTTL = 5 * time.Minute

// Cache stores rendered book views keyed by family. Entries are cheap
// to rebuild, so every implementation is allowed to drop them at will;
// callers must treat a miss as a normal path.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}
