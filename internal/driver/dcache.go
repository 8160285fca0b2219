package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"molosser/internal/template"
)

// Digest is the SHA-256 of a tree's JSON bytes.
type Digest [sha256.Size]byte

// DigestOf hashes data.
func DigestOf(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// TreeCache keeps decoded template trees on disk in msgpack form, keyed by
// the digest of their JSON source. Thread-safe for concurrent access.
// A nil *TreeCache is a cache that never hits.
type TreeCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenTreeCache opens the cache at the standard location for app.
func OpenTreeCache(app string) (*TreeCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewTreeCache(filepath.Join(base, app))
}

// NewTreeCache opens a cache rooted at dir, creating it if needed.
func NewTreeCache(dir string) (*TreeCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TreeCache{dir: dir}, nil
}

func (c *TreeCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "trees", hex.EncodeToString(key[:])+".mp")
}

// Put writes root under key. The file is replaced atomically.
func (c *TreeCache) Put(key Digest, root *template.Block) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = template.EncodeMsgpack(f, root); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the tree stored under key. A missing entry is a miss, not an
// error; an entry from an older schema is an error.
func (c *TreeCache) Get(key Digest) (*template.Block, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	root, err := template.DecodeMsgpack(f)
	if err != nil {
		return nil, false, err
	}
	return root, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *TreeCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
