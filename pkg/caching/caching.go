package caching

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/dtnitsch/seo-copywriter/models"
	"github.com/patrickmn/go-cache"
)

// Cache keeps recent analysis reports in memory with a TTL.
type Cache struct {
	items *cache.Cache
	ttl   time.Duration
}

// NewCache creates a new Cache instance.
// A zero ttl keeps entries until the process exits.
func NewCache(ttl time.Duration) *Cache {
	expiration := ttl
	cleanup := ttl * 2
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}
	return &Cache{
		items: cache.New(expiration, cleanup),
		ttl:   ttl,
	}
}

// Key generates a SHA256 hash over the parts that determine a report.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Get returns a copy of the cached report and true if the key is present
// and not expired.
func (c *Cache) Get(key string) (*models.Report, bool) {
	v, found := c.items.Get(key)
	if !found {
		return nil, false
	}
	report, ok := v.(models.Report)
	if !ok {
		return nil, false
	}
	report.Keywords = append([]string(nil), report.Keywords...)
	return &report, true
}

// Set stores a copy of report under key.
func (c *Cache) Set(key string, report *models.Report) {
	stored := *report
	stored.Keywords = append([]string(nil), report.Keywords...)
	c.items.Set(key, stored, cache.DefaultExpiration)
}

// Len reports the number of cached entries, including expired ones not yet
// cleaned up.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
