package trivia

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedCategories wraps a CategorySource with a TTL cache so menus do not
// hit the backing store on every open. Concurrent refreshes collapse into a
// single load via singleflight.
type CachedCategories struct {
	source CategorySource
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	cached    []Category
	expiresAt time.Time
}

// NewCachedCategories creates a category cache with the given TTL.
func NewCachedCategories(source CategorySource, ttl time.Duration) *CachedCategories {
	return &CachedCategories{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Categories returns the cached category list, refreshing it when expired.
func (c *CachedCategories) Categories(ctx context.Context) ([]Category, error) {
	now := c.clock()

	c.mu.RLock()
	if c.cached != nil && c.expiresAt.After(now) {
		cats := c.cached
		c.mu.RUnlock()
		return cats, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("categories", func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if c.cached != nil && c.expiresAt.After(now) {
			cats := c.cached
			c.mu.RUnlock()
			return cats, nil
		}
		c.mu.RUnlock()

		cats, err := c.source.Categories(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = cats
		c.expiresAt = now.Add(c.ttlWithJitter())
		c.mu.Unlock()
		return cats, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]Category), nil
}

// Invalidate drops the cached list so the next call reloads it.
// Called after importing a question pack.
func (c *CachedCategories) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

func (c *CachedCategories) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
