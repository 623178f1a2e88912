package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// artifactSchema versions the on-disk entry layout. Entries written by an
// older or newer binary are treated as misses and evicted rather than
// decoded on faith.
const artifactSchema = 1

// FileCache stores rendered artifacts on disk, one file per entry. It is
// the backing store for repeated renders of the same dataset: the render
// path hashes the normalized dataset, looks the artifact up here, and only
// re-renders on a miss.
type FileCache struct {
	dir string
}

// NewFileCache opens an artifact cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// artifactEntry is the on-disk form of one cached artifact.
type artifactEntry struct {
	Schema     int       `json:"schema"`
	Artifact   []byte    `json:"artifact"`
	RenderedAt time.Time `json:"rendered_at"`
	ExpiresAt  time.Time `json:"expires_at,omitempty"`
}

// Get returns the artifact stored under key. Entries that are expired,
// corrupt, or written under a different schema are evicted and reported as
// misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry artifactEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Schema != artifactSchema {
		_ = os.Remove(path)
		return nil, false, nil
	}

	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Artifact, true, nil
}

// Set stores an artifact under key. A zero ttl keeps the entry until it is
// deleted; any non-zero ttl, negative included, sets an absolute expiry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	now := time.Now()
	entry := artifactEntry{
		Schema:     artifactSchema,
		Artifact:   data,
		RenderedAt: now,
	}
	if ttl != 0 {
		entry.ExpiresAt = now.Add(ttl)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Write-then-rename so a concurrent Get never observes a torn entry.
	tmp, err := os.CreateTemp(filepath.Dir(path), "artifact-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes the artifact stored under key, if any.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; entries persist across processes until evicted.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to its file, fanned out over two-character subdirectories
// so a large cache does not pile every entry into one directory.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
