package cache

import (
	"context"
	"time"
)

// Cache is the contract for the catalog cache. Only the two fixed catalogs
// (license categories, offense types) go through it; entity reads always
// hit the store directly.
type Cache interface {
	// Get reads a key into dest. found=false means cache miss and dest is
	// left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
