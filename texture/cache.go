package texture

import (
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// Cache keeps recently loaded textures keyed by file path so that scenes
// referencing the same image decode it once.
type Cache struct {
	mu    sync.Mutex
	items *lru.Cache // path -> Texture
	load  func(string) (Texture, error)
}

// NewCache returns a cache holding at most size textures.
func NewCache(size int) (*Cache, error) {
	items, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{items: items, load: Load}, nil
}

// Get returns the texture for path, loading it on a miss.
func (c *Cache) Get(path string) (Texture, error) {
	if val, ok := c.items.Get(path); ok {
		return val.(Texture), nil
	}

	// serialize loads so a burst of lookups for one path decodes it once
	c.mu.Lock()
	defer c.mu.Unlock()
	if val, ok := c.items.Get(path); ok {
		return val.(Texture), nil
	}
	tex, err := c.load(path)
	if err != nil {
		return Texture{}, err
	}
	c.items.Add(path, tex)
	return tex, nil
}

// Close releases the mappings of every cached texture and empties the
// cache. Evicted textures are not closed since patterns may still sample them.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.items.Keys() {
		if val, ok := c.items.Peek(key); ok {
			if err := val.(Texture).Close(); err != nil {
				slog.Warn("closing texture", "path", key, "error", err)
			}
		}
	}
	c.items.Purge()
}

// Len reports how many textures are cached.
func (c *Cache) Len() int {
	return c.items.Len()
}
