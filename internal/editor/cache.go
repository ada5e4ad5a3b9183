package editor

import (
	"container/list"
	"image"
	"sync"
)

// AssetCache keeps decoded images across preview renders and save retries so
// a session does not re-decode its source on every operation.
//
// It is an explicit, injected service rather than a package-level singleton:
// entries are namespaced by session ID via CacheKey, evicted least recently
// used under a byte budget, and removed eagerly when a session closes.
//
// AssetCache is safe for concurrent use.
type AssetCache struct {
	mu      sync.Mutex
	budget  int64
	used    int64
	order   *list.List // front = most recently used
	entries map[string]*list.Element
}

type cacheEntry struct {
	key  string
	img  image.Image
	size int64
}

// DefaultCacheBudget is the byte budget used when the caller does not
// configure one: enough for a handful of decoded camera-sized images.
const DefaultCacheBudget = 256 << 20

// NewAssetCache creates a cache holding at most budgetBytes of decoded pixel
// data. A non-positive budget falls back to DefaultCacheBudget.
func NewAssetCache(budgetBytes int64) *AssetCache {
	if budgetBytes <= 0 {
		budgetBytes = DefaultCacheBudget
	}
	return &AssetCache{
		budget:  budgetBytes,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

// CacheKey builds a namespaced cache key for one session's asset.
func CacheKey(sessionID, kind string) string {
	return sessionID + "/" + kind
}

// Get returns the cached image for key, marking it most recently used.
func (c *AssetCache) Get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).img, true
}

// Put stores img under key, evicting least recently used entries until the
// budget holds. An image larger than the entire budget is not stored.
func (c *AssetCache) Put(key string, img image.Image) {
	size := imageBytes(img)

	c.mu.Lock()
	defer c.mu.Unlock()

	if size > c.budget {
		return
	}
	if el, ok := c.entries[key]; ok {
		c.removeLocked(el)
	}
	for c.used+size > c.budget {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest)
	}

	el := c.order.PushFront(&cacheEntry{key: key, img: img, size: size})
	c.entries[key] = el
	c.used += size
}

// Evict removes a single entry. Missing keys are a no-op.
func (c *AssetCache) Evict(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.removeLocked(el)
	}
}

// EvictSession removes every entry in a session's namespace. Called when the
// session is saved or cancelled so decoded images never outlive it.
func (c *AssetCache) EvictSession(sessionID string) {
	prefix := sessionID + "/"

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, el := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			c.removeLocked(el)
		}
	}
}

// Used returns the current byte footprint of cached pixel data.
func (c *AssetCache) Used() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

func (c *AssetCache) removeLocked(el *list.Element) {
	entry := el.Value.(*cacheEntry)
	c.order.Remove(el)
	delete(c.entries, entry.key)
	c.used -= entry.size
}

// imageBytes estimates the decoded footprint of an image at four bytes per
// pixel, which matches the RGBA-family types the pipeline produces.
func imageBytes(img image.Image) int64 {
	b := img.Bounds()
	return int64(b.Dx()) * int64(b.Dy()) * 4
}
