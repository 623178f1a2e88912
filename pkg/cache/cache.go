// Package cache provides a file-based cache for rendered chart artifacts.
//
// Rendering the same dataset with the same options always produces identical
// bytes, so artifacts are cached under a key derived from the dataset hash
// and the render options. The render command uses this to skip re-rendering
// unchanged datasets; pass --no-cache to bypass it with NullCache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores rendered artifacts keyed by string.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires; a
	// negative ttl stores it already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts captures the render options that affect artifact bytes.
// Two renders with the same dataset hash and the same opts produce the same
// output, so they share a cache entry.
type ArtifactKeyOpts struct {
	Format     string // output format: "html", "ansi", "json"
	Dark       bool   // dark theme forced on
	Light      bool   // light theme forced on
	Standalone bool   // HTML wrapped in a complete document
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates keys by hashing the dataset hash and options together.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", datasetHash, opts)
}

// hashKey derives a namespaced key from its parts: prefix:hash(parts...).
// The full 256-bit digest is kept so distinct datasets cannot collide.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// The render path uses it to fingerprint normalized datasets.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
