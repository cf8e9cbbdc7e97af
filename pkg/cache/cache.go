// Package cache provides the artifact cache used to skip re-packing
// unchanged inputs.
//
// Cache keys are content-addressed: they hash the input file contents
// together with the packing options, so any change to either invalidates
// the entry. Three backends are provided: a file cache for local use,
// a Redis cache for shared CI runners, and a null cache that disables
// caching entirely.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries. Entries are content-addressed, so they never
// go stale; the TTLs only bound disk and Redis growth.
const (
	// TTLPack is the lifetime of cached pack manifests.
	TTLPack = 30 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached encoded atlas images.
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache stores opaque byte blobs under string keys with a TTL.
type Cache interface {
	// Get retrieves the value for key. The second return value reports
	// whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
