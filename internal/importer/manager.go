package importer

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/xps-import/internal/logger"
)

// Manager imports models with one set of options and caches the results by
// path.
type Manager struct {
	opts  Options
	cache *Cache
}

// NewManager creates a new import manager.
func NewManager(opts Options) *Manager {
	return &Manager{
		opts:  opts,
		cache: NewCache(),
	}
}

// Load imports the model at path, or returns the cached result.
func (m *Manager) Load(path string) (*Result, error) {
	if res, ok := m.cache.Get(path); ok {
		logger.Debug("model cache hit", zap.String("path", path))
		return res, nil
	}

	res, err := Open(path, m.opts)
	if err != nil {
		return nil, err
	}
	m.cache.Set(path, res)
	return res, nil
}

// LoadAll imports paths concurrently. Results and errors are indexed like
// paths; a failed import leaves a nil result.
func (m *Manager) LoadAll(paths []string) ([]*Result, []error) {
	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i], errs[i] = m.Load(path)
		}(i, path)
	}
	wg.Wait()

	return results, errs
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops every cached model.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is an in-memory cache of imported models.
type Cache struct {
	data map[string]*Result
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*Result),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return res, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, res *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = res
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*Result)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
