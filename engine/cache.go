package engine

import (
	"crypto/md5"
	"fmt"
	"sort"
	"sync"
	"time"

	"calcterm/lexer"
	"calcterm/value"
)

// Cache stores postfix sequences for already-parsed infix input, keyed by
// the input text and the base mode it was tokenized under. Retokenizing is
// deterministic, so cached sequences are always valid for their key.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]*cachedPostfix
	enabled   bool
	maxSize   int
	hitCount  int
	missCount int
}

type cachedPostfix struct {
	postfix   []lexer.Token
	timestamp time.Time
}

// NewCache creates a postfix cache; maxSize 0 selects the default bound
func NewCache(enabled bool, maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = 500
	}
	return &Cache{
		entries: make(map[string]*cachedPostfix),
		enabled: enabled,
		maxSize: maxSize,
	}
}

// Get retrieves a cached postfix sequence
func (c *Cache) Get(input string, base value.BaseMode) ([]lexer.Token, bool) {
	if !c.enabled {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, exists := c.entries[cacheKey(input, base)]; exists {
		c.hitCount++
		return cached.postfix, true
	}
	c.missCount++
	return nil, false
}

// Put stores a postfix sequence for the given input and base
func (c *Cache) Put(input string, base value.BaseMode, postfix []lexer.Token) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[cacheKey(input, base)] = &cachedPostfix{
		postfix:   postfix,
		timestamp: time.Now(),
	}
}

// Stats returns cache performance counters
func (c *Cache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hitCount + c.missCount
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hitCount) / float64(total) * 100
	}

	return map[string]interface{}{
		"enabled":    c.enabled,
		"hits":       c.hitCount,
		"misses":     c.missCount,
		"hit_rate":   hitRate,
		"cache_size": len(c.entries),
	}
}

// Clear drops all cached sequences and counters
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cachedPostfix)
	c.hitCount = 0
	c.missCount = 0
}

func cacheKey(input string, base value.BaseMode) string {
	hash := md5.Sum([]byte(base.String() + ":" + input))
	return fmt.Sprintf("%x", hash)
}

// evictOldest removes the oldest fifth of the cache; callers hold the lock
func (c *Cache) evictOldest() {
	toRemove := len(c.entries) / 5
	if toRemove == 0 {
		toRemove = 1
	}

	type entry struct {
		key       string
		timestamp time.Time
	}

	var entries []entry
	for key, cached := range c.entries {
		entries = append(entries, entry{key: key, timestamp: cached.timestamp})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].timestamp.Before(entries[j].timestamp)
	})

	for i := 0; i < toRemove && i < len(entries); i++ {
		delete(c.entries, entries[i].key)
	}
}
