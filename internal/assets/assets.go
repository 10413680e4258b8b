// Package assets handles asset loading and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Manager loads files from a root directory and caches the bytes.
type Manager struct {
	root  string
	cache *Cache
}

// NewManager creates an asset manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{
		root:  dir,
		cache: NewCache(),
	}
}

// Load reads a file by its slash-separated path relative to the asset root.
func (m *Manager) Load(path string) ([]byte, error) {
	// Check cache first
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(m.Path(path))
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", path, err)
	}

	m.cache.Set(path, data)
	return data, nil
}

// Path resolves an asset path against the root without reading it.
func (m *Manager) Path(path string) string {
	return filepath.Join(m.root, filepath.FromSlash(path))
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
