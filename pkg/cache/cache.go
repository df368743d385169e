// Package cache stores rendered habit graphs between CLI runs.
//
// Rendering a graph to SVG shells out to Graphviz's layout engine, which is
// the one slow step of the CLI. Output is keyed by a hash of the DOT source
// plus the render options, so an unchanged habit file renders instantly and
// any edit (a new completion, a renamed habit, another date) misses.
//
// Three backends share the [Cache] interface:
//
//   - [FileCache]: one JSON file per entry under the user cache directory.
//   - [RedisCache]: a shared Redis instance, keys namespaced by a prefix.
//   - [NullCache]: stores nothing; used when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (ok == false), not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long rendered graphs are kept when the configuration
// does not say otherwise.
const DefaultTTL = 7 * 24 * time.Hour
