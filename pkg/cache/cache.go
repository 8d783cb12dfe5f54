// Package cache stores rendered artifacts between runs.
//
// # Overview
//
// Rendering a pyramid is cheap, converting it to PNG or PDF is not: those go
// through an external tool. The pipeline therefore caches every artifact it
// produces under a key derived from everything that influences the bytes
// (catalog, geometry, selection, style and format). Three backends
// implement [Cache]:
//
//   - [NullCache]: Caching disabled
//   - [FileCache]: One JSON file per entry, for the CLI
//   - [RedisCache]: Shared cache for `serve` deployments
//
// Keys come from a [Keyer]. [ScopedKeyer] prefixes keys so several
// catalogs or tenants can share one Redis database.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry is
	// reported as a miss (ok == false) with a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// NullCache misses on every Get and drops every Set.
type NullCache struct{}

func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)      { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
